package engine

// Подписи кнопок. Фронтенды рисуют их на клавиатуре и матчат входящий текст.
const (
	ButtonNewQuestion = "Новый вопрос"
	ButtonSurrender   = "Сдаться"
	ButtonMyScore     = "Мой счёт"
)

// Реплики бота.
const (
	msgGreeting      = "Привет! Я бот для викторин!"
	msgCorrect       = "Правильно! Поздравляю!"
	msgWrong         = "Неправильно... Попробуешь ещё раз?"
	msgNewQuestion   = "Для следующего вопроса нажми \"Новый вопрос\"."
	msgSurrenderHint = "Если затрудняешься с ответом, нажми \"Сдаться\"."
	msgAnswerLabel   = "Ответ"
	msgNoActive      = "У вас нет активного вопроса."
	msgStopped       = "Игра остановлена. Чтобы сыграть ещё раз, отправь /start."
)
