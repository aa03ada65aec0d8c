package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/infogrowkro/growkroweb/internal/helpers"
	"github.com/infogrowkro/growkroweb/internal/models"
)

func SearchCreators(c *gin.Context) {
	gormDB, ok := database(c)
	if !ok {
		return
	}

	query := gormDB.Model(&models.Creator{})

	if q := c.Query("q"); q != "" {
		pattern := "%" + strings.ToLower(q) + "%"
		query = query.Where(
			"lower(name) LIKE ? OR lower(bio) LIKE ? OR lower(category) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("lower(category) LIKE ?", "%"+strings.ToLower(category)+"%")
	}
	if location := c.Query("location"); location != "" {
		query = query.Where("lower(location) LIKE ?", "%"+strings.ToLower(location)+"%")
	}

	// Follower bounds match against either platform's audience.
	minFollowers := helpers.QueryInt(c, "min_followers", 0)
	maxFollowers := helpers.QueryInt(c, "max_followers", 0)
	if minFollowers > 0 && maxFollowers > 0 {
		query = query.Where(
			"(instagram_followers >= ? AND instagram_followers <= ?) OR (youtube_subscribers >= ? AND youtube_subscribers <= ?)",
			minFollowers, maxFollowers, minFollowers, maxFollowers,
		)
	} else if minFollowers > 0 {
		query = query.Where("instagram_followers >= ? OR youtube_subscribers >= ?", minFollowers, minFollowers)
	} else if maxFollowers > 0 {
		query = query.Where("instagram_followers <= ? OR youtube_subscribers <= ?", maxFollowers, maxFollowers)
	}

	limit := helpers.QueryInt(c, "limit", 20)

	var creators []models.Creator
	if err := query.Limit(limit).Find(&creators).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, fmt.Sprintf("Error searching creators: %v", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"results": creators,
		"count":   len(creators),
	})
}

func PlatformStats(c *gin.Context) {
	gormDB, ok := database(c)
	if !ok {
		return
	}

	var total, verified int64
	if err := gormDB.Model(&models.Creator{}).Count(&total).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, fmt.Sprintf("Error fetching stats: %v", err))
		return
	}
	if err := gormDB.Model(&models.Creator{}).Where("verification_status = ?", true).Count(&verified).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, fmt.Sprintf("Error fetching stats: %v", err))
		return
	}

	packageCounts := gin.H{}
	for _, pkg := range models.HighlightPackages {
		var count int64
		if err := gormDB.Model(&models.Creator{}).Where("highlight_package = ?", pkg.ID).Count(&count).Error; err != nil {
			helpers.RespondWithError(c, http.StatusInternalServerError, fmt.Sprintf("Error fetching stats: %v", err))
			return
		}
		packageCounts[pkg.ID] = count
	}

	c.JSON(http.StatusOK, gin.H{
		"total_creators":     total,
		"verified_creators":  verified,
		"highlight_packages": packageCounts,
	})
}
