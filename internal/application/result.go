package application

import "net/http"

// Result is the outcome of a service call that reached a business decision.
// Infrastructure failures are returned as errors instead and rendered as 500.
type Result struct {
	Status int
	Data   any
}

type Message struct {
	Message string `json:"message"`
}

func msg(status int, message string) Result {
	return Result{Status: status, Data: Message{Message: message}}
}

func ok(data any) Result      { return Result{Status: http.StatusOK, Data: data} }
func created(data any) Result { return Result{Status: http.StatusCreated, Data: data} }

// UnauthorizedError rejects a token whose subject cannot be resolved.
type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string { return e.Message }

const (
	MsgEmailNotValidated   = "Email not validated"
	MsgInvalidCredentials  = "E-mail ou Senha não conferem"
	MsgInvalidPayload      = "Invalid payload or email"
	MsgPrincipalNotFound   = "User not found or not authorized!"
	MsgRecoveryRequested   = "Caso esse e-mail esteja cadastrado no sistema, será encaminhado para ele uma mensagem de orientação sobre os próximos passos para a redefinição da senha."
	MsgUserNotFound        = "Usuário não encontrado!"
	MsgCompanyNotFound     = "Empresa não encontrada!"
	MsgPasswordMismatch    = "As senhas não conferem!"
	MsgPasswordReset       = "Senha redefinida com sucesso!"
	MsgPasswordChanged     = "Senha alterada com sucesso!"
	MsgOldPasswordInvalid  = "A senha atual não confere!"
	MsgPasswordTooLong     = "A senha deve ter no máximo 72 bytes"
	MsgEmailTaken          = "E-mail já cadastrado"
	MsgCPFTaken            = "CPF já cadastrado"
	MsgCNPJTaken           = "CNPJ já cadastrado"
	MsgProfileKeyRequired  = "profileKey is required when file is send"
	MsgProfileKeyMismatch  = "profileKey does not match the current profile picture"
	MsgUserUpdated         = "User updated successfully"
	MsgCompanyUpdated      = "Company updated successfully"
	MsgUserDeleted         = "User deleted successfully"
	MsgCompanyDeleted      = "Company deleted successfully"
	MsgConfirmTokenInvalid = "Token inválido ou expirado"
	MsgEmailConfirmed      = "E-mail confirmado com sucesso!"
	MsgConfirmationResent  = "Caso esse e-mail esteja cadastrado e ainda não confirmado, um novo link de confirmação será enviado."
	MsgJobNotFound         = "Vaga não encontrada!"
	MsgJobForbidden        = "Você não tem permissão para alterar esta vaga"
	MsgJobArchived         = "Vaga arquivada com sucesso!"
	MsgJobDeleted          = "Vaga removida com sucesso!"
	MsgJobNotActive        = "Vaga não está ativa"
	MsgCompanyJobsListed   = "Logged company jobs listed successfully."
	MsgSalaryRange         = "salaryMax must be greater than or equal to salaryMin"
	MsgCurriculumNotFound  = "Currículo não encontrado!"
	MsgCurriculumDeleted   = "Currículo removido com sucesso!"
	MsgCurriculumFormat    = "Formato de arquivo inválido. Envie PDF, DOC ou DOCX"
	MsgCurriculumTooLarge  = "Arquivo excede o tamanho máximo permitido"
	MsgCurriculumLimit     = "Limite de currículos atingido"
	MsgAlreadyApplied      = "Candidatura já realizada para esta vaga"
	MsgCandidacyNotFound   = "Candidatura não encontrada!"
	MsgSavedJobExists      = "Vaga já está salva"
	MsgSavedJobNotFound    = "Vaga salva não encontrada!"
	MsgSavedJobDeleted     = "Vaga removida dos salvos"
	MsgForbidden           = "Acesso negado"
)
