// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the Inkwell blog API.
// Handlers are grouped by resource (posts, categories) and receive
// their dependencies through the handler struct. Every response uses
// the same JSON envelope: {success, data} on success with optional list
// metadata, {success, message} on failure.
package handlers

import (
	"encoding/json"
	"net/http"
)

// listMeta describes a page of results.
type listMeta struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}

type successEnvelope struct {
	Success bool      `json:"success"`
	Data    any       `json:"data"`
	Meta    *listMeta `json:"meta,omitempty"`
}

type errorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// respondData writes a success envelope with the given status code.
func respondData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, successEnvelope{Success: true, Data: data})
}

// respondPage writes a success envelope carrying list metadata.
func respondPage(w http.ResponseWriter, data any, meta listMeta) {
	writeJSON(w, http.StatusOK, successEnvelope{Success: true, Data: data, Meta: &meta})
}

// respondError writes an error envelope with the given status code.
func respondError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorEnvelope{Success: false, Message: message})
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
