package parser

import (
	"errors"
	"fmt"
)

var (
	// ErrUnreadableFile the payload has no parseable spreadsheet structure
	ErrUnreadableFile = errors.New("não foi possível ler o arquivo como planilha")
	// ErrNoSheet the workbook contains zero sheets
	ErrNoSheet = errors.New("não foi possível encontrar uma planilha no arquivo")
	// ErrNoValidRows matched by *NoValidRowsError through errors.Is
	ErrNoValidRows = errors.New("nenhuma linha de dados válida")
)

// NoValidRowsError no row passed the day-number gate.
// DaysInMonth is the bound the gate used, so the message can tell the user what to check.
type NoValidRowsError struct {
	DaysInMonth int
}

func (e *NoValidRowsError) Error() string {
	return fmt.Sprintf(
		"Nenhuma linha de dados válida foi encontrada. Verifique se a coluna '%s' contém os dias do mês (números de 1 a %d) a partir da linha %d.",
		ColDay, e.DaysInMonth, DataStartRow,
	)
}

func (e *NoValidRowsError) Is(target error) bool {
	return target == ErrNoValidRows
}
