package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Quartz Events Notification API",
        "description": "Audience-targeted broadcast and lottery service for event waiting lists",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Auth", "description": "Authentication"},
        {"name": "Events", "description": "Event management"},
        {"name": "Waiting List", "description": "Entrant membership lifecycle"},
        {"name": "Notifications", "description": "Audience broadcasts and single sends"},
        {"name": "Draw", "description": "Lottery draws"},
        {"name": "Inbox", "description": "Entrant inbox"},
        {"name": "Admin", "description": "Audit logs and exports"}
    ],
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Authenticate and issue an access token",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/events": {
            "get": {
                "tags": ["Events"],
                "summary": "List the caller's events",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Events"],
                "summary": "Create an event",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Event"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/events/{id}": {
            "get": {
                "tags": ["Events"],
                "summary": "Get an event",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/events/{id}/waiting-list": {
            "get": {
                "tags": ["Waiting List"],
                "summary": "List the waiting-list snapshot",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Waiting List"],
                "summary": "Join the waiting list",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "201": {"description": "Joined"},
                    "409": {"description": "Already joined"}
                }
            },
            "delete": {
                "tags": ["Waiting List"],
                "summary": "Leave the waiting list",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/events/{id}/waiting-list/accept": {
            "post": {
                "tags": ["Waiting List"],
                "summary": "Accept an invitation",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "409": {"description": "No pending invitation"}
                }
            }
        },
        "/events/{id}/waiting-list/decline": {
            "post": {
                "tags": ["Waiting List"],
                "summary": "Decline an invitation",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "409": {"description": "No pending invitation"}
                }
            }
        },
        "/events/{id}/notifications": {
            "post": {
                "tags": ["Notifications"],
                "summary": "Broadcast to an audience cohort",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/NotifyAudienceRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/NotifyResponse"}},
                    "502": {"description": "Pipeline stage failed"}
                }
            }
        },
        "/events/{id}/notifications/single": {
            "post": {
                "tags": ["Notifications"],
                "summary": "Notify a single recipient",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/NotifySingleRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/NotifyResponse"}}
                }
            }
        },
        "/events/{id}/draw": {
            "post": {
                "tags": ["Draw"],
                "summary": "Run the lottery draw",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RunDrawRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/DrawResponse"}}
                }
            }
        },
        "/events/{id}/draw/replacement": {
            "post": {
                "tags": ["Draw"],
                "summary": "Draw one replacement entrant",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/DrawResponse"}}
                }
            }
        },
        "/inbox": {
            "get": {
                "tags": ["Inbox"],
                "summary": "List the caller's inbox",
                "parameters": [
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "page_size", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/inbox/unread": {
            "get": {
                "tags": ["Inbox"],
                "summary": "Get the unread count",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/inbox/{id}/read": {
            "post": {
                "tags": ["Inbox"],
                "summary": "Mark one inbox item read",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/admin/notification-logs": {
            "get": {
                "tags": ["Admin"],
                "summary": "List notification audit logs",
                "parameters": [
                    {"name": "event_id", "in": "query", "type": "string"},
                    {"name": "audience", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "page_size", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/notification-logs/export": {
            "post": {
                "tags": ["Admin"],
                "summary": "Export audit logs to CSV or PDF",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ExportLogsRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/notification-logs/export/download": {
            "get": {
                "tags": ["Admin"],
                "summary": "Download a rendered export",
                "parameters": [
                    {"name": "token", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "File attachment"},
                    "401": {"description": "Invalid or expired token"}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            },
            "required": ["email", "password"]
        },
        "Event": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "organizer_id": {"type": "string"},
                "poster_url": {"type": "string"},
                "capacity": {"type": "integer"},
                "event_date": {"type": "string"}
            }
        },
        "NotifyAudienceRequest": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "audience": {"type": "string", "enum": ["waiting", "chosen", "selected", "cancelled"]},
                "include_poster": {"type": "boolean"},
                "link_url": {"type": "string"}
            },
            "required": ["message", "audience"]
        },
        "NotifySingleRequest": {
            "type": "object",
            "properties": {
                "recipient_id": {"type": "string"},
                "message": {"type": "string"},
                "audience": {"type": "string"},
                "include_poster": {"type": "boolean"},
                "link_url": {"type": "string"}
            },
            "required": ["recipient_id", "message", "audience"]
        },
        "NotifyResponse": {
            "type": "object",
            "properties": {
                "broadcast_id": {"type": "string"},
                "audience": {"type": "string"},
                "delivered_count": {"type": "integer"}
            }
        },
        "RunDrawRequest": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"}
            },
            "required": ["count"]
        },
        "DrawResponse": {
            "type": "object",
            "properties": {
                "event_id": {"type": "string"},
                "requested": {"type": "integer"},
                "drawn_count": {"type": "integer"},
                "winner_ids": {"type": "array", "items": {"type": "string"}}
            }
        },
        "ExportLogsRequest": {
            "type": "object",
            "properties": {
                "event_id": {"type": "string"},
                "format": {"type": "string", "enum": ["csv", "pdf"]}
            },
            "required": ["format"]
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
