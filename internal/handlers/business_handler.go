package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/infogrowkro/growkroweb/internal/helpers"
	"github.com/infogrowkro/growkroweb/internal/matching"
	"github.com/infogrowkro/growkroweb/internal/models"
)

type BusinessOwnerCreateRequest struct {
	Name               string   `json:"name" binding:"required"`
	Email              string   `json:"email" binding:"required,email"`
	CompanyName        string   `json:"company_name" binding:"required"`
	CompanyDescription string   `json:"company_description"`
	Industry           string   `json:"industry" binding:"required"`
	Location           string   `json:"location"`
	BudgetRange        string   `json:"budget_range"`
	CollaborationType  string   `json:"collaboration_type" binding:"required"`
	TargetAudience     string   `json:"target_audience"`
	PreferredPlatforms []string `json:"preferred_platforms"`
	MinFollowers       int      `json:"min_followers"`
	MaxFollowers       int      `json:"max_followers"`
	ContactPhone       string   `json:"contact_phone"`
	Website            string   `json:"website"`
}

type CollaborationRequestInput struct {
	CreatorID           string          `json:"creator_id" binding:"required"`
	CampaignTitle       string          `json:"campaign_title" binding:"required"`
	CampaignDescription string          `json:"campaign_description"`
	CollaborationType   string          `json:"collaboration_type" binding:"required"`
	BudgetAmount        decimal.Decimal `json:"budget_amount"`
	DurationDays        int             `json:"duration_days"`
	Requirements        []string        `json:"requirements"`
}

func ListBusinessOwners(c *gin.Context) {
	gormDB, ok := database(c)
	if !ok {
		return
	}

	query := gormDB.Model(&models.BusinessOwner{})
	if industry := c.Query("industry"); industry != "" {
		query = query.Where("lower(industry) LIKE ?", "%"+strings.ToLower(industry)+"%")
	}
	if location := c.Query("location"); location != "" {
		query = query.Where("lower(location) LIKE ?", "%"+strings.ToLower(location)+"%")
	}

	limit := helpers.QueryInt(c, "limit", 20)
	skip := helpers.QueryInt(c, "skip", 0)

	var owners []models.BusinessOwner
	if err := query.Order("created_at DESC").Limit(limit).Offset(skip).Find(&owners).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, fmt.Sprintf("Error fetching business owners: %v", err))
		return
	}

	c.JSON(http.StatusOK, owners)
}

func CreateBusinessOwner(c *gin.Context) {
	var req BusinessOwnerCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	gormDB, ok := database(c)
	if !ok {
		return
	}

	var existing models.BusinessOwner
	if result := gormDB.Where("email = ?", req.Email).First(&existing); result.Error == nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Business owner with this email already exists")
		return
	}

	owner := models.BusinessOwner{
		Name:               req.Name,
		Email:              req.Email,
		CompanyName:        req.CompanyName,
		CompanyDescription: req.CompanyDescription,
		Industry:           req.Industry,
		Location:           req.Location,
		BudgetRange:        req.BudgetRange,
		CollaborationType:  req.CollaborationType,
		TargetAudience:     req.TargetAudience,
		PreferredPlatforms: req.PreferredPlatforms,
		MinFollowers:       req.MinFollowers,
		MaxFollowers:       req.MaxFollowers,
		ContactPhone:       req.ContactPhone,
		Website:            req.Website,
		ProfileStatus:      models.StatusPending,
	}

	if err := gormDB.Create(&owner).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, fmt.Sprintf("Error creating business owner: %v", err))
		return
	}

	c.JSON(http.StatusOK, owner)
}

// MatchCreatorsForBusiness ranks approved creators against a business's
// audience criteria and returns the best fits.
func MatchCreatorsForBusiness(c *gin.Context) {
	gormDB, ok := database(c)
	if !ok {
		return
	}

	var owner models.BusinessOwner
	if err := gormDB.Where("id = ?", c.Param("id")).First(&owner).Error; err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Business owner not found")
		return
	}

	var approved []models.Creator
	err := gormDB.Where("profile_status = ?", models.StatusApproved).Find(&approved).Error
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, fmt.Sprintf("Error matching creators: %v", err))
		return
	}

	limit := helpers.QueryInt(c, "limit", matching.DefaultLimit)
	c.JSON(http.StatusOK, matching.Rank(&owner, approved, limit))
}

func CreateCollaborationRequest(c *gin.Context) {
	businessOwnerID := c.Query("business_owner_id")
	if businessOwnerID == "" {
		helpers.RespondWithError(c, http.StatusBadRequest, "business_owner_id is required")
		return
	}

	var req CollaborationRequestInput
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	gormDB, ok := database(c)
	if !ok {
		return
	}

	var owner models.BusinessOwner
	if err := gormDB.Where("id = ?", businessOwnerID).First(&owner).Error; err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Business owner not found")
		return
	}

	var creator models.Creator
	if err := gormDB.Where("id = ?", req.CreatorID).First(&creator).Error; err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Creator not found")
		return
	}

	creatorID, err := uuid.Parse(req.CreatorID)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid creator ID")
		return
	}

	request := models.CollaborationRequest{
		BusinessOwnerID:     owner.ID,
		CreatorID:           creatorID,
		CampaignTitle:       req.CampaignTitle,
		CampaignDescription: req.CampaignDescription,
		CollaborationType:   req.CollaborationType,
		BudgetAmount:        req.BudgetAmount,
		DurationDays:        req.DurationDays,
		Requirements:        req.Requirements,
		Status:              models.CollaborationPending,
	}

	if err := gormDB.Create(&request).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, fmt.Sprintf("Error creating collaboration request: %v", err))
		return
	}

	c.JSON(http.StatusOK, request)
}
