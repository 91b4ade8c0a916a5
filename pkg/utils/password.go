package utils

import "golang.org/x/crypto/bcrypt"

func HashPassword(pw string) string {
	b, _ := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(b)
}

// CheckPassword verifies pw against a stored hash. A missing hash never
// matches; it is not compared against the empty string.
func CheckPassword(pw string, hashed *string) bool {
	if hashed == nil || *hashed == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(*hashed), []byte(pw)) == nil
}
