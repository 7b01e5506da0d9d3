package globals

// Context keys
type ContextKey string

const UserInfoKey ContextKey = "userInfo"
const SignedInKey ContextKey = "signedIn"

// SessionCookieName is the auth-provider session cookie. It is forwarded
// verbatim to the backend on every attributed request and never parsed here.
const SessionCookieName = "better-auth.session_token"
