package server

import (
	"numclass/internal/domain/entity"
	"numclass/internal/domain/value"
	"numclass/pkg/lox"
	"numclass/pkg/rest"
)

func NewRESTClassification(c entity.Classification) rest.Classification {
	return rest.Classification{
		Number:     c.Number.Int64(),
		IsPrime:    c.IsPrime,
		IsPerfect:  c.IsPerfect,
		Properties: lox.Map(c.Properties, value.Property.String),
		DigitSum:   c.DigitSum,
		FunFact:    c.FunFact.String(),
	}
}
