// Package docs serves interactive API documentation.
//
// The Swagger 2.0 document is generated from the routes already registered on
// the router when [Docs.Setup] runs, so it must be the last sub-component to
// register. Routes can be enriched with summaries and responses through
// [Route] annotations; unannotated routes still appear with a default 200
// response.
package docs
