package helpdesksdk

import "rocket_help/pkg/dateformat"

type Locale = dateformat.Locale

const (
	LocalePTBR = dateformat.LocalePTBR
	LocaleEN   = dateformat.LocaleEN
)

// MessageKey identifies a user-facing string.
type MessageKey string

const (
	MsgSignInTitle         MessageKey = "sign_in.title"
	MsgMissingCredentials  MessageKey = "sign_in.missing_credentials"
	MsgInvalidEmail        MessageKey = "sign_in.invalid_email"
	MsgInvalidCredentials  MessageKey = "sign_in.invalid_credentials"
	MsgSignInFailed        MessageKey = "sign_in.failed"
	MsgOrderTitle          MessageKey = "order.title"
	MsgEmptyOpen           MessageKey = "orders.empty_open"
	MsgEmptyClosed         MessageKey = "orders.empty_closed"
	MsgLoadFailed          MessageKey = "orders.load_failed"
	MsgSolutionRequired    MessageKey = "order.solution_required"
	MsgOrderClosed         MessageKey = "order.closed"
	MsgCloseFailed         MessageKey = "order.close_failed"
	MsgAlreadyClosed       MessageKey = "order.already_closed"
	MsgOrderFieldsRequired MessageKey = "order.fields_required"
	MsgOrderCreated        MessageKey = "order.created"
	MsgCreateFailed        MessageKey = "order.create_failed"
)

var catalogs = map[Locale]map[MessageKey]string{
	LocalePTBR: {
		MsgSignInTitle:         "Entrar",
		MsgMissingCredentials:  "Informe e-mail e senha.",
		MsgInvalidEmail:        "E-mail inválido.",
		MsgInvalidCredentials:  "E-mail ou senha inválida.",
		MsgSignInFailed:        "Não foi possível acessar.",
		MsgOrderTitle:          "Solicitação",
		MsgEmptyOpen:           "Você ainda não possui solicitações em andamento",
		MsgEmptyClosed:         "Você ainda não possui solicitações finalizadas",
		MsgLoadFailed:          "Não foi possível carregar as solicitações.",
		MsgSolutionRequired:    "Informe a solução para encerrar a solicitação.",
		MsgOrderClosed:         "Solicitação encerrada.",
		MsgCloseFailed:         "Não foi possível encerrar a solicitação.",
		MsgAlreadyClosed:       "Esta solicitação já foi encerrada.",
		MsgOrderFieldsRequired: "Preencha todos os campos.",
		MsgOrderCreated:        "Solicitação registrada com sucesso.",
		MsgCreateFailed:        "Não foi possível registrar a solicitação.",
	},
	LocaleEN: {
		MsgSignInTitle:         "Sign in",
		MsgMissingCredentials:  "Enter email and password.",
		MsgInvalidEmail:        "Invalid email.",
		MsgInvalidCredentials:  "Invalid email or password.",
		MsgSignInFailed:        "Could not sign in.",
		MsgOrderTitle:          "Request",
		MsgEmptyOpen:           "You have no requests in progress yet",
		MsgEmptyClosed:         "You have no completed requests yet",
		MsgLoadFailed:          "Could not load requests.",
		MsgSolutionRequired:    "Enter the solution to close the request.",
		MsgOrderClosed:         "Request closed.",
		MsgCloseFailed:         "Could not close the request.",
		MsgAlreadyClosed:       "This request was already closed.",
		MsgOrderFieldsRequired: "Fill in all fields.",
		MsgOrderCreated:        "Request registered.",
		MsgCreateFailed:        "Could not register the request.",
	},
}

// Message looks key up in locale, falling back to pt-BR.
func Message(locale Locale, key MessageKey) string {
	if msg, ok := catalogs[locale][key]; ok {
		return msg
	}
	return catalogs[LocalePTBR][key]
}
