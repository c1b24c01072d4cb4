package security

// In-memory account registry for the pseudo-login (replace with a real
// identity provider later).
type Account struct {
	ID       string
	Email    string
	Password string
	Enabled  bool
}

var Accounts = map[string]Account{
	"alex.johnson@example.com": {ID: "user-1", Email: "alex.johnson@example.com", Password: "luxe-demo", Enabled: true},
	"demo@luxe.com":            {ID: "user-demo", Email: "demo@luxe.com", Password: "luxe-demo", Enabled: true},
}

// Verify checks the pseudo-login credentials against the registry.
func Verify(email, password string) (Account, bool) {
	acc, ok := Accounts[email]
	if !ok || !acc.Enabled || acc.Password != password {
		return Account{}, false
	}
	return acc, true
}
