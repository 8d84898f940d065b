package relay

// User-facing and admin-facing texts. The bot speaks Russian, matching
// the audience of the product it fronts.
const (
	welcomeText = "Привет! 👋\n\n" +
		"Insighteer позволяет тестировать маркетинговые креативы и стратегии.\n\n" +
		"Можете задать любой вопрос, и мы вам обязательно ответим 👌"

	receiptText = "Ваше сообщение отправлено, мы вскоре вам ответим ☺️"

	userErrorText = "Произошла ошибка при отправке сообщения. Попробуйте позже."

	replyButtonLabel = "Ответить"

	replyPromptText = "<b>Ответ пользователю:</b>\n\n" +
		"Ответьте на это сообщение, чтобы отправить ответ пользователю."

	replyPromptAck = "Теперь ответьте на сообщение выше, чтобы отправить ответ пользователю"

	replyErrorAck = "Произошла ошибка. Попробуйте позже."

	replySentText = "✅ Ответ отправлен пользователю"

	replyFailedText = "Произошла ошибка при отправке ответа пользователю."

	mediaPlaceholder = "[Медиа-файл]"

	nameNotSpecified = "Не указано"

	startNoticeHeader = "Пользователь нажал /start"

	userMessageHeader = "Сообщение от пользователя:"

	motivationHeader = "Мотивация на день:"
)

// MotivationalPhrases is the pool the daily announcement draws from.
var MotivationalPhrases = []string{
	"Сегодня отличный день для новых достижений! 💪",
	"Каждый день - это новая возможность стать лучше! 🌟",
	"Верь в себя, и у тебя всё получится! ✨",
	"Твоя целеустремленность приведет к успеху! 🚀",
	"Сегодня ты сделаешь что-то великое! 💎",
	"Не останавливайся на достигнутом - впереди еще больше! 🎯",
	"Твоя энергия и энтузиазм вдохновляют! 🔥",
	"Каждый шаг приближает тебя к цели! 👣",
	"Сегодня ты станешь лучше, чем вчера! 📈",
	"Твоя настойчивость - ключ к успеху! 🔑",
	"Верь в свои силы - они безграничны! 💫",
	"Сегодня день, когда мечты становятся реальностью! 🌈",
	"Твоя страсть к делу создает чудеса! ⚡",
	"Каждая проблема - это возможность для роста! 🌱",
	"Сегодня ты покоришь новые вершины! ⛰️",
	"Твоя решимость меняет мир к лучшему! 🌍",
	"Не сдавайся - успех уже близко! 🎉",
	"Сегодня ты проявишь себя во всей красе! 🌺",
	"Твоя уверенность - твоя суперсила! 🦸",
	"Каждый день - это шанс стать легендой! 🏆",
}
