// Данный файл должен быть сгенерирован из openapi спецификации и называться types.gen.go
package rest

// Classification Результат классификации числа
type Classification struct {
	Number     int64    `json:"number"`
	IsPrime    bool     `json:"is_prime"`
	IsPerfect  bool     `json:"is_perfect"`
	Properties []string `json:"properties"`
	DigitSum   int      `json:"digit_sum"`
	FunFact    string   `json:"fun_fact"`
}

// ClassificationError Ответ на некорректный параметр number
type ClassificationError struct {
	// Number Исходная строка запроса, null если параметр не передан
	Number *string `json:"number"`
	Error  bool    `json:"error"`
}

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке (для отображения в UI в будущем)
	Message string `json:"message"`
}

// ErrorCode Код ошибки
type ErrorCode string
