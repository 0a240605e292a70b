package utils

import "strings"

// GenerateUsername derives a username from an email address: the local part,
// lowercased, with everything but letters and digits stripped out.
// "Jane.Doe+x@example.com" becomes "janedoex".
func GenerateUsername(email string) string {
	local := email
	if at := strings.IndexByte(email, '@'); at >= 0 {
		local = email[:at]
	}
	var b strings.Builder
	for _, r := range strings.ToLower(local) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
