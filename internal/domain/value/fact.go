package value

type FactOutcome string

const (
	FactFound     FactOutcome = "found"
	FactNoText    FactOutcome = "no_text"
	FactBadStatus FactOutcome = "bad_status"
	FactError     FactOutcome = "error"
)

const (
	factNoTextMessage    = "No fun fact found."
	factBadStatusMessage = "Failed to fetch fun fact."
	factErrorPrefix      = "Error fetching fun fact: "
)

// Fact результат запроса к сервису фактов: либо текст, либо причина неудачи.
// Ошибкой наружу не становится никогда.
type Fact struct {
	Outcome    FactOutcome
	Text       string
	StatusCode int
	Err        error
}

func FactFromText(text string) Fact {
	if text == "" {
		return Fact{Outcome: FactNoText}
	}

	return Fact{Outcome: FactFound, Text: text}
}

func FactFromStatus(statusCode int) Fact {
	return Fact{Outcome: FactBadStatus, StatusCode: statusCode}
}

func FactFromError(err error) Fact {
	return Fact{Outcome: FactError, Err: err}
}

// OK сообщает, что получен настоящий факт (его можно кешировать).
func (f Fact) OK() bool {
	return f.Outcome == FactFound
}

// String возвращает строку для поля fun_fact, всегда непустую.
func (f Fact) String() string {
	switch f.Outcome {
	case FactFound:
		return f.Text
	case FactBadStatus:
		return factBadStatusMessage
	case FactError:
		if f.Err == nil {
			return factErrorPrefix + "unknown error"
		}

		return factErrorPrefix + f.Err.Error()
	default:
		return factNoTextMessage
	}
}
