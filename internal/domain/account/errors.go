package account

const (
	CodeMissingName     = "missing_name"
	CodeMissingEmail    = "missing_email"
	CodeMissingIsDoctor = "missing_is_doctor"
	CodeMissingPassword = "missing_password"
	CodeInvalidEmail    = "invalid_email"
	CodeInvalidDomain   = "invalid_email_domain"
	CodeInvalidPassword = "invalid_password"
	CodeEmailTaken      = "email_taken"
	CodeBadCredentials  = "invalid_credentials"
	CodeBrowserRequired = "browser_required"
	CodeInvalidSession  = "invalid_session"
)

// Browsers doctors may sign in from; matched against the User-Agent header.
var DoctorBrowsers = []string{"Chrome", "Safari", "Edg"}
