package roster

import "errors"

var (
	ErrNameRequired         = errors.New("o nome da vendedora é obrigatório")
	ErrSalespersonNotFound  = errors.New("vendedora não encontrada")
	ErrNothingToClear       = errors.New("não existem dados para excluir")
	ErrConfirmationRequired = errors.New("confirmação necessária para zerar os dados")
)
