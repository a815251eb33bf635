package gcore

import "strings"

// Route describes how a tool id maps onto the Gcore REST API.
type Route struct {
	Method string
	// Base is the collection path without project/region scoping or a
	// resource id, e.g. "/cloud/v1/instances".
	Base string
	// Scoped routes get "/{project_id}/{region_id}" appended after Base.
	Scoped bool
	// Item routes operate on a single resource and take an "id" argument.
	Item bool
	// Action is a trailing path segment after the id ("start", "console").
	Action string
}

var servicePrefixes = map[string]string{
	"cloud": "/cloud/v1",
	"waap":  "/waap/v1",
	"dns":   "/dns/v2",
}

// Project-level cloud resources that are not addressed per region.
var unscopedCloudResources = map[string]bool{
	"projects": true,
	"regions":  true,
	"tasks":    true,
	"quotas":   true,
}

// Bulk verbs that act on the whole collection and take no resource id.
var collectionVerbs = map[string]bool{
	"acknowledge_all":        true,
	"get_capacity_by_region": true,
}

// Resolve derives the HTTP route for a dotted tool id. The last segment is
// the verb, the first the service, everything between the resource path.
// Returns false for ids that do not map onto a REST call.
func Resolve(name string) (Route, bool) {
	segments := strings.Split(name, ".")
	if len(segments) < 3 {
		return Route{}, false
	}
	prefix, ok := servicePrefixes[segments[0]]
	if !ok {
		return Route{}, false
	}
	resources := segments[1 : len(segments)-1]
	verb := segments[len(segments)-1]

	route := Route{
		Base:   prefix + "/" + strings.Join(resources, "/"),
		Scoped: segments[0] == "cloud" && !unscopedCloudResources[resources[0]],
	}

	switch verb {
	case "list":
		route.Method = "GET"
	case "create":
		route.Method = "POST"
	case "get":
		route.Method = "GET"
		route.Item = true
	case "update":
		route.Method = "PATCH"
		route.Item = true
	case "replace":
		route.Method = "PUT"
		route.Item = true
	case "delete":
		route.Method = "DELETE"
		route.Item = true
	default:
		// Compound verbs address a sub-resource of one item: get_console
		// reads ".../{id}/console", delete_rule removes ".../{id}/rule".
		// Everything else is an action POSTed to ".../{id}/{verb}", except
		// collection-level bulk verbs, which drop the id segment.
		route.Item = !collectionVerbs[verb]
		head, tail, found := strings.Cut(verb, "_")
		if found {
			switch head {
			case "get", "list":
				route.Method = "GET"
				route.Action = tail
				return route, true
			case "delete":
				route.Method = "DELETE"
				route.Action = tail
				return route, true
			}
		}
		route.Method = "POST"
		route.Action = verb
	}
	return route, true
}

// Routable reports whether a tool id can be bound to a REST call.
func Routable(name string) bool {
	_, ok := Resolve(name)
	return ok
}
