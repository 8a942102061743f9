// Package greeting é o adapter HTTP do Greeting Service: uma saudação estática
// que ecoa o endereço de origem e o Host da requisição.
package greeting

import (
	"net/http"

	"demo-services/clientip"

	"github.com/gorilla/mux"
)

const Message = "Hello from Node.js app behind Nginx reverse proxy! 💚"

// Body monta a resposta de GET /.
func Body(r *http.Request) string {
	return Message +
		"\nRequest came from: " + clientip.Origin(r) +
		"\nHost: " + r.Host
}

func Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(Body(r)))
}

func Register(r *mux.Router) {
	r.HandleFunc("/", Index).Methods(http.MethodGet, http.MethodHead)
}
