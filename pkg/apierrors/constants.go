package apierrors

const (
	MsgInvalidPayload      = "invalidPayload"
	MsgInvalidTaskID       = "invalidTaskID"
	MsgInvalidTaskPayload  = "invalidTaskPayload"
	MsgTaskNotFound        = "taskNotFound"
	MsgFailListTask        = "errorListTask"
	MsgFailCreateTask      = "failCreateTask"
	MsgFailUpdateTask      = "failUpdateTask"
	MsgFailDeleteTask      = "failDeleteTask"
	MsgDuplicateEmail      = "duplicateEmail"
	MsgDuplicateUsername   = "duplicateUsername"
	MsgInvalidRegistration = "invalidRegistration"
	MsgFailRegister        = "failRegister"
	MsgUserRegistered      = "userRegistered"
	MsgInvalidCredentials  = "invalidCredentials"
	MsgFailLogin           = "failLogin"
	MsgFailLogout          = "failLogout"
	MsgNoSession           = "noSession"
	MsgUnauthorized        = "unauthorized"
	MsgForbidden           = "forbidden"
	MsgFailListUsers       = "failListUsers"
	MsgFailStats           = "failStats"
	MsgInvalidFocusPayload = "invalidFocusPayload"
	MsgFailFocus           = "failFocus"
	MsgFocusTaskDone       = "focusTaskDone"
	MsgFailFocusComplete   = "failFocusComplete"
	MsgRateLimited         = "rateLimited"
)
