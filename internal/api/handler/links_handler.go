package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// QuickLinks are the outbound shortcuts shown on the dashboard.
var QuickLinks = []linkResponse{
	{Name: "YouTube", URL: "https://www.youtube.com"},
	{Name: "Twitter", URL: "https://twitter.com"},
	{Name: "GitHub", URL: "https://github.com"},
	{Name: "LinkedIn", URL: "https://www.linkedin.com"},
}

// Links returns the quick link list.
//
// @Summary      Quick links
// @Tags         links
// @Produce      json
// @Success      200  {array}  linkResponse
// @Router       /v1/links [get]
func Links(c echo.Context) error {
	return c.JSON(http.StatusOK, QuickLinks)
}
