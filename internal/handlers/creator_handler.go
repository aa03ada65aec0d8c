package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/infogrowkro/growkroweb/internal/helpers"
	"github.com/infogrowkro/growkroweb/internal/models"
)

type CreatorCreateRequest struct {
	Name               string `json:"name" binding:"required"`
	Email              string `json:"email" binding:"required,email"`
	Bio                string `json:"bio"`
	InstagramHandle    string `json:"instagram_handle"`
	InstagramFollowers int    `json:"instagram_followers"`
	YoutubeHandle      string `json:"youtube_handle"`
	YoutubeSubscribers int    `json:"youtube_subscribers"`
	TwitterHandle      string `json:"twitter_handle"`
	TwitterFollowers   int    `json:"twitter_followers"`
	TiktokHandle       string `json:"tiktok_handle"`
	TiktokFollowers    int    `json:"tiktok_followers"`
	SnapchatHandle     string `json:"snapchat_handle"`
	SnapchatFollowers  int    `json:"snapchat_followers"`
	Location           string `json:"location"`
	Category           string `json:"category"`
}

type CreatorUpdateRequest struct {
	Name               *string `json:"name"`
	Bio                *string `json:"bio"`
	InstagramHandle    *string `json:"instagram_handle"`
	InstagramFollowers *int    `json:"instagram_followers"`
	YoutubeHandle      *string `json:"youtube_handle"`
	YoutubeSubscribers *int    `json:"youtube_subscribers"`
	TwitterHandle      *string `json:"twitter_handle"`
	TwitterFollowers   *int    `json:"twitter_followers"`
	TiktokHandle       *string `json:"tiktok_handle"`
	TiktokFollowers    *int    `json:"tiktok_followers"`
	SnapchatHandle     *string `json:"snapchat_handle"`
	SnapchatFollowers  *int    `json:"snapchat_followers"`
	Location           *string `json:"location"`
	Category           *string `json:"category"`
	ProfilePicture     *string `json:"profile_picture"`
}

func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "GrowKro API is running!",
		"status":  "active",
	})
}

func ListCreators(c *gin.Context) {
	gormDB, ok := database(c)
	if !ok {
		return
	}

	query := gormDB.Model(&models.Creator{})
	if category := c.Query("category"); category != "" {
		query = query.Where("lower(category) LIKE ?", "%"+strings.ToLower(category)+"%")
	}
	if location := c.Query("location"); location != "" {
		query = query.Where("lower(location) LIKE ?", "%"+strings.ToLower(location)+"%")
	}
	if helpers.QueryBool(c, "verified_only") {
		query = query.Where("verification_status = ?", true)
	}
	if pkg := c.Query("package"); pkg != "" {
		query = query.Where("highlight_package = ?", pkg)
	}

	limit := helpers.QueryInt(c, "limit", 20)
	skip := helpers.QueryInt(c, "skip", 0)

	var creators []models.Creator
	if err := query.Order("created_at DESC").Limit(limit).Offset(skip).Find(&creators).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, fmt.Sprintf("Error fetching creators: %v", err))
		return
	}

	c.JSON(http.StatusOK, creators)
}

func GetCreator(c *gin.Context) {
	gormDB, ok := database(c)
	if !ok {
		return
	}

	var creator models.Creator
	if err := gormDB.Where("id = ?", c.Param("id")).First(&creator).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Creator not found")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, fmt.Sprintf("Error fetching creator: %v", err))
		return
	}

	c.JSON(http.StatusOK, creator)
}

func CreateCreator(c *gin.Context) {
	var req CreatorCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	gormDB, ok := database(c)
	if !ok {
		return
	}

	var existing models.Creator
	if result := gormDB.Where("email = ?", req.Email).First(&existing); result.Error == nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Creator with this email already exists")
		return
	}

	creator := models.Creator{
		Name:               req.Name,
		Email:              req.Email,
		Bio:                req.Bio,
		InstagramHandle:    req.InstagramHandle,
		InstagramFollowers: req.InstagramFollowers,
		YoutubeHandle:      req.YoutubeHandle,
		YoutubeSubscribers: req.YoutubeSubscribers,
		TwitterHandle:      req.TwitterHandle,
		TwitterFollowers:   req.TwitterFollowers,
		TiktokHandle:       req.TiktokHandle,
		TiktokFollowers:    req.TiktokFollowers,
		SnapchatHandle:     req.SnapchatHandle,
		SnapchatFollowers:  req.SnapchatFollowers,
		Location:           req.Location,
		Category:           req.Category,
		ProfileStatus:      models.StatusPending,
	}

	if err := gormDB.Create(&creator).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, fmt.Sprintf("Error creating creator: %v", err))
		return
	}

	c.JSON(http.StatusOK, creator)
}

func UpdateCreator(c *gin.Context) {
	var req CreatorUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	gormDB, ok := database(c)
	if !ok {
		return
	}

	var creator models.Creator
	if err := gormDB.Where("id = ?", c.Param("id")).First(&creator).Error; err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Creator not found")
		return
	}

	updates := map[string]interface{}{}
	setString := func(column string, value *string) {
		if value != nil {
			updates[column] = *value
		}
	}
	setInt := func(column string, value *int) {
		if value != nil {
			updates[column] = *value
		}
	}
	setString("name", req.Name)
	setString("bio", req.Bio)
	setString("instagram_handle", req.InstagramHandle)
	setInt("instagram_followers", req.InstagramFollowers)
	setString("youtube_handle", req.YoutubeHandle)
	setInt("youtube_subscribers", req.YoutubeSubscribers)
	setString("twitter_handle", req.TwitterHandle)
	setInt("twitter_followers", req.TwitterFollowers)
	setString("tiktok_handle", req.TiktokHandle)
	setInt("tiktok_followers", req.TiktokFollowers)
	setString("snapchat_handle", req.SnapchatHandle)
	setInt("snapchat_followers", req.SnapchatFollowers)
	setString("location", req.Location)
	setString("category", req.Category)
	setString("profile_picture", req.ProfilePicture)

	if len(updates) > 0 {
		if err := gormDB.Model(&creator).Updates(updates).Error; err != nil {
			helpers.RespondWithError(c, http.StatusInternalServerError, fmt.Sprintf("Error updating creator: %v", err))
			return
		}
	}

	if err := gormDB.Where("id = ?", creator.ID).First(&creator).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, fmt.Sprintf("Error fetching creator: %v", err))
		return
	}

	c.JSON(http.StatusOK, creator)
}

func DeleteCreator(c *gin.Context) {
	gormDB, ok := database(c)
	if !ok {
		return
	}

	result := gormDB.Where("id = ?", c.Param("id")).Delete(&models.Creator{})
	if result.Error != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, fmt.Sprintf("Error deleting creator: %v", result.Error))
		return
	}
	if result.RowsAffected == 0 {
		helpers.RespondWithError(c, http.StatusNotFound, "Creator not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Creator deleted successfully"})
}

func UpgradeCreatorPackage(c *gin.Context) {
	gormDB, ok := database(c)
	if !ok {
		return
	}

	pkg, found := models.FindHighlightPackage(c.Param("package_id"))
	if !found {
		helpers.RespondWithError(c, http.StatusNotFound, "Package not found")
		return
	}

	var creator models.Creator
	if err := gormDB.Where("id = ?", c.Param("id")).First(&creator).Error; err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Creator not found")
		return
	}

	if !pkg.EligibleFor(&creator) {
		helpers.RespondWithError(c, http.StatusBadRequest, fmt.Sprintf(
			"Insufficient Instagram followers. %s requires %s Instagram followers, creator has %s",
			pkg.Name,
			helpers.FormatCount(pkg.MinInstagramFollowers),
			helpers.FormatCount(creator.InstagramFollowers),
		))
		return
	}

	if err := gormDB.Model(&creator).Update("highlight_package", pkg.ID).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, fmt.Sprintf("Error upgrading package: %v", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Creator upgraded to %s successfully", pkg.Name)})
}
