package domain

// Public API messages. The Portuguese wording is part of the contract and
// must not be reworded.
const (
	MsgWelcome       = "Bem-vindo!"
	MsgNotAuthorized = "Não autorizado"

	MsgBadCredentials = "Email ou senha incorretos"

	MsgAccountConflict = "Conta já consta no MADR"
	MsgAccountDeleted  = "Conta deletada com sucesso"

	MsgNovelistConflict     = "Romancista já consta no MADR"
	MsgNovelistNameConflict = "Nome já consta no MADR"
	MsgNovelistNotFound     = "Romancista não consta no MADR"
	MsgNovelistDeleted      = "Romancista deletado no MADR"

	MsgBookConflict      = "Livro já consta no MADR"
	MsgBookTitleConflict = "Título já consta no MADR"
	MsgBookNotFound      = "Livro não consta no MADR"
	MsgBookDeleted       = "Livro deletado no MADR"
)
