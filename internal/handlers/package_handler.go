package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/infogrowkro/growkroweb/internal/helpers"
	"github.com/infogrowkro/growkroweb/internal/models"
)

func ListPackages(c *gin.Context) {
	c.JSON(http.StatusOK, models.HighlightPackages)
}

func GetPackage(c *gin.Context) {
	pkg, found := models.FindHighlightPackage(c.Param("id"))
	if !found {
		helpers.RespondWithError(c, http.StatusNotFound, "Package not found")
		return
	}
	c.JSON(http.StatusOK, pkg)
}
