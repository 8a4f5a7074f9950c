package interp

// Prompt and message text is fixed literal Russian, never localized.
const (
	msgUnknownCommand = "Такой команды нет, используйте help для списка команд"

	msgHelpIntro    = "Укажите команду, для которой хотите посмотреть помощь"
	msgHelpCommands = "Доступные команды: add, median, rand"
	msgHelpExitHint = "Чтобы выйти из режима помощи введите end"
	msgHelpUnknown  = "Такой команды нет"
	msgHelpAdd      = "Вычисляет сумму двух чисел"
	msgHelpMedian   = "Вычисляет медиану списка чисел"
	msgHelpRand     = "Генерирует список случайных чисел"
)
