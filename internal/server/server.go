package server

import "numclass/pkg/contextx"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Данный сервер просто объединяет специфичные HTTP сервера, отвечающие за обработку конкретных сущностей
type Server struct {
	ClassifyServer
}

func NewServer(
	classifyServer ClassifyServer,
) Server {
	return Server{
		ClassifyServer: classifyServer,
	}
}
