package entity

import "numclass/internal/domain/value"

// Classification результат классификации одного числа, живёт в рамках запроса
type Classification struct {
	Number     value.Number
	IsPrime    bool
	IsPerfect  bool
	Properties []value.Property // armstrong (если есть), затем even или odd
	DigitSum   int
	FunFact    value.Fact
}
