package router

import (
	"net/http"

	"catatan/app/controllers"
	"catatan/app/middleware"
)

func NewRouter(httpCtrl *controllers.HTTPController, authCtrl *controllers.AuthController, noteCtrl *controllers.NoteController, exportCtrl *controllers.ExportController, mw *middleware.Auth) http.Handler {
	mux := http.NewServeMux()
	// public
	mux.HandleFunc("/ping", httpCtrl.Ping)
	mux.HandleFunc("/register", authCtrl.Register)
	mux.HandleFunc("/login", authCtrl.Login)
	mux.HandleFunc("/reset-password", authCtrl.ResetPassword)

	// authenticated
	mux.Handle("/logout", mw.RequireAuth(http.HandlerFunc(authCtrl.Logout)))
	mux.Handle("/notes", mw.RequireAuth(http.HandlerFunc(noteCtrl.Collection)))
	mux.Handle("/notes/pin", mw.RequireAuth(http.HandlerFunc(noteCtrl.Pin)))
	mux.Handle("/notes/delete", mw.RequireAuth(http.HandlerFunc(noteCtrl.Delete)))
	mux.Handle("/notes/export", mw.RequireAuth(http.HandlerFunc(exportCtrl.Download)))

	return mux
}
