// Millesime - Wine Vintage Quality and Gift Recommendation Service
// Copyright 2026 M. Vachon (mvachon)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mvachon/millesime

// Package main provides the Millesime HTTP server
//
// Millesime serves wine vintage quality data and occasion-based gift
// recommendations over a REST API.
//
// @title Millesime API
// @version 1.0
// @description Wine vintage quality lookup and gift recommendation service
// @description
// @description ## Features
// @description
// @description - **Vintage Quality Lookup**: Scores and tasting descriptions for 20 wine regions per year
// @description - **GeoJSON Regions**: Region polygons with per-year vintage data merged into properties
// @description - **Gift Recommendations**: Occasion-aware primary pick plus up to three alternatives
// @description - **Curated Notes**: Hand-written notes for landmark vintages
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address.
// @description Rate limit headers are included in responses: `X-RateLimit-Limit`, `X-RateLimit-Remaining`, `X-RateLimit-Reset`.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "status": "error",
// @description   "data": null,
// @description   "error": {
// @description     "code": "ERROR_CODE",
// @description     "message": "Human-readable error message",
// @description     "details": {}
// @description   },
// @description   "metadata": {
// @description     "timestamp": "2026-08-29T12:34:56Z"
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/mvachon/millesime/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8310
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Vintages
// @tag.description Vintage quality data by year
//
// @tag.name Regions
// @tag.description GeoJSON wine region polygons with merged vintage properties
//
// @tag.name Recommendations
// @tag.description Gift wine recommendations for an occasion
//
// @tag.name Health
// @tag.description Health and readiness probes
package main
