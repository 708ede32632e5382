package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leagues", handler.ListLeagues)
	mux.HandleFunc("GET /v1/leagues/{leagueID}", handler.GetLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/teams", handler.ListTeamsByLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/fixtures", handler.ListFixturesByLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/standings", handler.ListLeagueStandings)
	mux.HandleFunc("GET /v1/fixtures/{fixtureID}", handler.GetFixture)
	mux.HandleFunc("GET /v1/fixtures/{fixtureID}/result", handler.GetFixtureResult)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/leagues/{leagueID}/fixtures", RequireAuth(verifier, http.HandlerFunc(handler.CreateFixture)))
	mux.Handle("PATCH /v1/fixtures/{fixtureID}/status", RequireAuth(verifier, http.HandlerFunc(handler.UpdateFixtureStatus)))
	mux.Handle("PUT /v1/fixtures/{fixtureID}/result", RequireAuth(verifier, http.HandlerFunc(handler.RecordFixtureResult)))
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/recalculate-standings", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunRecalculateStandingsJob)))
	mux.Handle("POST /v1/internal/jobs/recalculate-all", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunRecalculateAllJob)))
}
