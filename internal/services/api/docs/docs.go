// Package docs holds the OpenAPI document served by the swagger UI
package docs

import "github.com/swaggo/swag/v2"

const docTemplate = `{
    "openapi": "3.0.3",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "paths": {
        "/meta/health": {
            "get": {
                "tags": ["Meta"],
                "summary": "Health check",
                "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Envelope"}}}}}
            }
        },
        "/meta/ready": {
            "get": {
                "tags": ["Meta"],
                "summary": "Readiness probe with dependency checks",
                "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Envelope"}}}}}
            }
        },
        "/meta/version": {
            "get": {
                "tags": ["Meta"],
                "summary": "Build and version info",
                "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Envelope"}}}}}
            }
        },
        "/meta/service": {
            "get": {
                "tags": ["Meta"],
                "summary": "Service info and uptime",
                "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Envelope"}}}}}
            }
        },
        "/meta/wordlist": {
            "get": {
                "tags": ["Meta"],
                "summary": "Default word list in use",
                "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Envelope"}}}}}
            }
        },
        "/profiles/{user}": {
            "get": {
                "tags": ["Profiles"],
                "summary": "Profile a user's recent comments",
                "parameters": [
                    {"name": "user", "in": "path", "required": true, "schema": {"type": "string"}},
                    {"name": "limit", "in": "query", "schema": {"type": "integer", "minimum": 1}},
                    {"name": "sort", "in": "query", "schema": {"type": "string", "enum": ["none", "inc", "dec"]}},
                    {"name": "verbose", "in": "query", "schema": {"type": "boolean"}}
                ],
                "responses": {
                    "200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ProfileEnvelope"}}}},
                    "404": {"description": "user not found", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Envelope"}}}},
                    "502": {"description": "source unavailable", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Envelope"}}}}
                }
            }
        },
        "/profiles": {
            "post": {
                "tags": ["Profiles"],
                "summary": "Profile a user with an optional custom word list",
                "requestBody": {
                    "required": true,
                    "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ProfileInput"}}}
                },
                "responses": {
                    "200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ProfileEnvelope"}}}},
                    "502": {"description": "source unavailable", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Envelope"}}}}
                }
            }
        }
    },
    "components": {
        "schemas": {
            "Envelope": {
                "type": "object",
                "properties": {
                    "status_code": {"type": "integer"},
                    "status": {"type": "string"},
                    "code": {"type": "integer"},
                    "field": {"type": "string"},
                    "error": {"type": "string"},
                    "request_id": {"type": "string"},
                    "data": {"type": "object"}
                }
            },
            "ProfileInput": {
                "type": "object",
                "required": ["user"],
                "properties": {
                    "user": {"type": "string", "minLength": 3, "maxLength": 20},
                    "limit": {"type": "integer", "minimum": 1, "description": "reddit listings usually stop near 1000"},
                    "words": {"type": "array", "items": {"type": "string"}},
                    "sort": {"type": "string", "enum": ["none", "inc", "dec"]},
                    "verbose": {"type": "boolean"}
                }
            },
            "Bar": {
                "type": "object",
                "properties": {"label": {"type": "string"}, "value": {"type": "integer"}}
            },
            "WordCount": {
                "type": "object",
                "properties": {"word": {"type": "string"}, "count": {"type": "integer"}}
            },
            "GroupBreakdown": {
                "type": "object",
                "properties": {
                    "group": {"type": "string"},
                    "total": {"type": "integer"},
                    "words": {"type": "array", "items": {"$ref": "#/components/schemas/WordCount"}}
                }
            },
            "Summary": {
                "type": "object",
                "properties": {
                    "records_scanned": {"type": "integer"},
                    "records_with_match": {"type": "integer"},
                    "match_ratio_percent": {"type": "number"}
                }
            },
            "Report": {
                "type": "object",
                "properties": {
                    "sort": {"type": "string", "enum": ["none", "inc", "dec"]},
                    "bars": {"type": "array", "items": {"$ref": "#/components/schemas/Bar"}},
                    "breakdown": {"type": "array", "items": {"$ref": "#/components/schemas/GroupBreakdown"}},
                    "summary": {"$ref": "#/components/schemas/Summary"},
                    "empty": {"type": "boolean"}
                }
            },
            "ProfileResult": {
                "type": "object",
                "properties": {
                    "run_id": {"type": "string"},
                    "user": {"type": "string"},
                    "words": {"type": "integer"},
                    "normalize": {"type": "string", "enum": ["lower", "fold"]},
                    "report": {"$ref": "#/components/schemas/Report"}
                }
            },
            "ProfileEnvelope": {
                "allOf": [
                    {"$ref": "#/components/schemas/Envelope"},
                    {"type": "object", "properties": {"data": {"$ref": "#/components/schemas/ProfileResult"}}}
                ]
            }
        }
    }
}`

// SwaggerInfo holds exported swagger info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "sailormouth API",
	Description:      "Profiles how often a reddit user's recent comments use a list of target words, grouped by subreddit.",
	InfoInstanceName: "api",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
