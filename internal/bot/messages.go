package bot

const msgStart = `Привет! Я тест-бот.

Выберите роль:
• /register author — я составитель тестов
• /register participant — я участник

Примеры:
Создание теста (составитель):  ` + "`10 тест: +abcdabcdab`" + `
Сдача ответов (участник):       ` + "`1596:abcdabcdab`" + `
Завершить тест (составитель):   ` + "`/finish 1596`"

const msgFallback = `Не понял сообщение.

Создать тест (составитель):  ` + "`10 тест: +abcdabcdab`" + `
Сдать ответы (участник):     ` + "`1596:abcdabcdab`" + `
Завершить тест:              ` + "`/finish 1596`" + `
Роли: /register author  или  /register participant`

const msgRegisterUsage = `Используйте: /register author  или  /register participant`

const msgRoleSet = `Роль установлена: %s ✅`

const msgFinishUsage = `Используйте: /finish <код_теста>`

const msgResultsUsage = `Используйте: /results <код_теста>`

const msgOnlyAuthorFinishes = `Команда доступна только составителю.`

const msgOnlyAuthorCreates = `Создавать тесты может только составитель. Зарегистрируйтесь: /register author`

const msgTestNotFound = `Тест с таким кодом не найден.`

const msgNotOwner = `Вы не являетесь владельцем этого теста.`

const msgAlreadyClosed = `Тест уже завершён.`

const msgTestClosed = `Тест уже завершён. Новые ответы не принимаются.`

const msgBadAnswerKey = `Ключ должен содержать только буквы a/b/c/d (после знака '+').`

const msgKeyLengthMismatch = `Длина ключа (%d) должна совпадать с количеством вопросов (%d).`

const msgBadAnswers = `Ответы должны состоять только из a/b/c/d.`

const msgAnswersLengthMismatch = `Длина ваших ответов (%d) должна быть %d.`

const msgDuplicateSubmission = `Вы уже отправили ответы на этот тест. Повторная попытка не разрешена.`

const msgCodeSpaceExhausted = `Свободных кодов не осталось, новый тест создать нельзя.`

const msgSubmitAccepted = `Принято! Ваш результат: %d/%d ✅`

const msgTestCreated = `✅ Тест создан!

Код теста: *%s*
Длина: %d
Разошлите код участникам.

Участник отвечает так:  ` + "`код:егоответы`" + `  (например ` + "`%s:%s`" + `)
Чтобы завершить тест:  ` + "`/finish %s`"

const msgTestClosedNoEntries = `Тест %s закрыт. Участников не было.`

const msgTestClosedHeader = `Тест %s закрыт. Результаты:`

const msgResultsEmpty = `Тест %s (%s). Пока без попыток.`

const msgResultsHeader = `Тест %s (%s). Итоги:`

const msgInternalError = `Что-то пошло не так. Попробуйте позже.`
