// Package swagger HorecaSeek Service API.
//
// Directory service for horeca venues: professional establishment listings
// (restaurants, bars, traiteurs, hotels) and user-shared spots, with votes,
// merged search and role-driven account views.
//
// Main capabilities:
// - Public category pages and spot feed with display ratings
// - Merged substring search over establishments and spots
// - Account area gated by session with role-resolved content
// - Vote recording with atomic accumulators and stream-fed platform stats
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//	- multipart/form-data
//
//	Produces:
//	- application/json
//
//	Security:
//	- api_key:
//
//	SecurityDefinitions:
//	api_key:
//	     type: apiKey
//	     name: Authorization
//	     in: header
//
// swagger:meta
package swagger
