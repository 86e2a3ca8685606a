package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires all entity handlers under /api.
func NewRouter(
	companyHandler *CompanyHandler,
	carHandler *CarHandler,
	customerHandler *CustomerHandler,
	rentalHandler *RentalHandler,
	allowedOrigin string,
) *mux.Router {
	r := mux.NewRouter()
	r.Use(CORS(allowedOrigin))
	r.Use(RequestLogger)

	api := r.PathPrefix("/api").Subrouter()

	// Preflight requests never match a method-specific route, so they need a
	// catch-all for the CORS middleware to answer.
	api.PathPrefix("/").HandlerFunc(func(http.ResponseWriter, *http.Request) {}).Methods(http.MethodOptions)

	cars := api.PathPrefix("/cars").Subrouter()
	cars.HandleFunc("", carHandler.List).Methods(http.MethodGet)
	cars.HandleFunc("/search", carHandler.Search).Methods(http.MethodGet)
	cars.HandleFunc("/types", carHandler.Types).Methods(http.MethodGet)
	cars.HandleFunc("/generate", carHandler.Generate).Methods(http.MethodPost)
	cars.HandleFunc("/{id:[0-9]+}", carHandler.Get).Methods(http.MethodGet)
	cars.HandleFunc("", carHandler.Create).Methods(http.MethodPost)
	cars.HandleFunc("/{id:[0-9]+}", carHandler.Update).Methods(http.MethodPut)
	cars.HandleFunc("/{id:[0-9]+}", carHandler.Delete).Methods(http.MethodDelete)
	cars.HandleFunc("", carHandler.DeleteAll).Methods(http.MethodDelete)
	cars.HandleFunc("/{id:[0-9]+}/rent", carHandler.Rent).Methods(http.MethodPost)

	companies := api.PathPrefix("/companies").Subrouter()
	companies.HandleFunc("", companyHandler.List).Methods(http.MethodGet)
	companies.HandleFunc("/search", companyHandler.Search).Methods(http.MethodGet)
	companies.HandleFunc("/generate", companyHandler.Generate).Methods(http.MethodPost)
	companies.HandleFunc("/{id:[0-9]+}", companyHandler.Get).Methods(http.MethodGet)
	companies.HandleFunc("", companyHandler.Create).Methods(http.MethodPost)
	companies.HandleFunc("/{id:[0-9]+}", companyHandler.Update).Methods(http.MethodPut)
	companies.HandleFunc("/{id:[0-9]+}", companyHandler.Delete).Methods(http.MethodDelete)

	customers := api.PathPrefix("/customers").Subrouter()
	customers.HandleFunc("", customerHandler.List).Methods(http.MethodGet)
	customers.HandleFunc("/search", customerHandler.Search).Methods(http.MethodGet)
	customers.HandleFunc("/generate", customerHandler.Generate).Methods(http.MethodPost)
	customers.HandleFunc("/{id:[0-9]+}", customerHandler.Get).Methods(http.MethodGet)
	customers.HandleFunc("", customerHandler.Create).Methods(http.MethodPost)
	customers.HandleFunc("/{id:[0-9]+}", customerHandler.Update).Methods(http.MethodPut)
	customers.HandleFunc("/{id:[0-9]+}", customerHandler.Delete).Methods(http.MethodDelete)

	rentals := api.PathPrefix("/rentals").Subrouter()
	rentals.HandleFunc("", rentalHandler.List).Methods(http.MethodGet)
	rentals.HandleFunc("/generate", rentalHandler.Generate).Methods(http.MethodPost)
	rentals.HandleFunc("/{id:[0-9]+}", rentalHandler.Get).Methods(http.MethodGet)
	rentals.HandleFunc("", rentalHandler.Create).Methods(http.MethodPost)

	return r
}
