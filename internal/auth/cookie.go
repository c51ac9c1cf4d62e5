package auth

import (
	"net/http"
)

const sessionCookie = "_session"

func VerifyUser(r *http.Request, secret []byte) (string, error) {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil {
		return "", err
	}
	return GetUser(cookie.Value, secret)
}

func SetAuthCookie(username string, w http.ResponseWriter, secret []byte, TTLSeconds int) error {

	token, err := BuildJWTString(username, secret, TTLSeconds)
	if err != nil {
		return err
	}
	cookie := &http.Cookie{Name: sessionCookie, Value: token, MaxAge: TTLSeconds, Path: "/"}
	http.SetCookie(w, cookie)
	return nil
}

func ClearAuthCookie(w http.ResponseWriter) {
	cookie := &http.Cookie{Name: sessionCookie, Value: "", MaxAge: -1, Path: "/"}
	http.SetCookie(w, cookie)
}
