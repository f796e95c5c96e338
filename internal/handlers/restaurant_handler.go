package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/tavola/restaurant-hours/internal/domain/restaurant"
	"github.com/tavola/restaurant-hours/internal/httperr"
	"github.com/tavola/restaurant-hours/internal/httpresp"
	ucRestaurant "github.com/tavola/restaurant-hours/internal/usecase/restaurant"
)

type RestaurantHandler struct {
	createUC *ucRestaurant.CreateRestaurant
	getUC    *ucRestaurant.GetRestaurantByID
	listUC   *ucRestaurant.ListRestaurants
	searchUC *ucRestaurant.SearchRestaurants
	updateUC *ucRestaurant.UpdateRestaurant
	deleteUC *ucRestaurant.DeleteRestaurant
	isOpenUC *ucRestaurant.IsOpenRestaurant
}

func NewRestaurantHandler(
	createUC *ucRestaurant.CreateRestaurant,
	getUC *ucRestaurant.GetRestaurantByID,
	listUC *ucRestaurant.ListRestaurants,
	searchUC *ucRestaurant.SearchRestaurants,
	updateUC *ucRestaurant.UpdateRestaurant,
	deleteUC *ucRestaurant.DeleteRestaurant,
	isOpenUC *ucRestaurant.IsOpenRestaurant,
) *RestaurantHandler {
	return &RestaurantHandler{
		createUC: createUC,
		getUC:    getUC,
		listUC:   listUC,
		searchUC: searchUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		isOpenUC: isOpenUC,
	}
}

type addressRequest struct {
	Street     string `json:"street" binding:"required,min=3,max=255"`
	Number     string `json:"number" binding:"required,min=1,max=10"`
	Complement string `json:"complement" binding:"required,min=3,max=255"`
	District   string `json:"district" binding:"required,min=3,max=255"`
	City       string `json:"city" binding:"required,min=3,max=255"`
	State      string `json:"state" binding:"required,len=2"`
	ZipCode    string `json:"zip_code" binding:"required,len=8"`
}

type createRestaurantRequest struct {
	TradeName string         `json:"trade_name" binding:"required,min=3,max=255"`
	LegalName string         `json:"legal_name" binding:"required,min=3,max=255"`
	CNPJ      string         `json:"cnpj" binding:"required,len=14"`
	Phone     string         `json:"phone" binding:"required,min=10,max=11"`
	Category  string         `json:"category" binding:"required,oneof=SNACK_BAR FAST_FOOD PIZZERIA JAPANESE ITALIAN VEGETARIAN"`
	Email     string         `json:"email" binding:"required,email"`
	Address   addressRequest `json:"address" binding:"required"`
}

func (h *RestaurantHandler) Create(c *gin.Context) {
	var req createRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	rest, err := h.createUC.Execute(c.Request.Context(), ucRestaurant.CreateRestaurantInput{
		TradeName: req.TradeName,
		LegalName: req.LegalName,
		CNPJ:      req.CNPJ,
		Phone:     req.Phone,
		Email:     req.Email,
		Category:  req.Category,
		Address: ucRestaurant.AddressInput{
			Street:     req.Address.Street,
			Number:     req.Address.Number,
			Complement: req.Address.Complement,
			District:   req.Address.District,
			City:       req.Address.City,
			State:      req.Address.State,
			ZipCode:    req.Address.ZipCode,
		},
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, rest)
}

type listRestaurantsQuery struct {
	Page      int  `form:"page,default=1" binding:"min=1"`
	Limit     int  `form:"limit,default=10" binding:"min=1"`
	Address   bool `form:"address,default=true"`
	Schedules bool `form:"schedules,default=true"`
}

func (h *RestaurantHandler) List(c *gin.Context) {
	var q listRestaurantsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	out, err := h.listUC.Execute(c.Request.Context(), domain.ListFilter{
		Page:          q.Page,
		Limit:         q.Limit,
		WithAddress:   q.Address,
		WithSchedules: q.Schedules,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, out)
}

type searchRestaurantsQuery struct {
	Search string `form:"search" binding:"required,min=3,max=255"`
	Page   int    `form:"page,default=1" binding:"min=1"`
	Limit  int    `form:"limit,default=10" binding:"min=1"`
}

func (h *RestaurantHandler) Search(c *gin.Context) {
	var q searchRestaurantsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	out, err := h.searchUC.Execute(c.Request.Context(), q.Search, q.Page, q.Limit)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, out)
}

func (h *RestaurantHandler) GetByID(c *gin.Context) {
	rest, err := h.getUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, rest)
}

type updateAddressRequest struct {
	Street     *string `json:"street" binding:"omitempty,min=3,max=255"`
	Number     *string `json:"number" binding:"omitempty,min=1,max=10"`
	Complement *string `json:"complement" binding:"omitempty,min=3,max=255"`
	District   *string `json:"district" binding:"omitempty,min=3,max=255"`
	City       *string `json:"city" binding:"omitempty,min=3,max=255"`
	State      *string `json:"state" binding:"omitempty,len=2"`
	ZipCode    *string `json:"zip_code" binding:"omitempty,len=8"`
}

type updateRestaurantRequest struct {
	TradeName *string               `json:"trade_name" binding:"omitempty,min=3,max=255"`
	LegalName *string               `json:"legal_name" binding:"omitempty,min=3,max=255"`
	CNPJ      *string               `json:"cnpj" binding:"omitempty,len=14"`
	Phone     *string               `json:"phone" binding:"omitempty,min=10,max=11"`
	Category  *string               `json:"category" binding:"omitempty,oneof=SNACK_BAR FAST_FOOD PIZZERIA JAPANESE ITALIAN VEGETARIAN"`
	Email     *string               `json:"email" binding:"omitempty,email"`
	Address   *updateAddressRequest `json:"address"`
}

func (h *RestaurantHandler) Update(c *gin.Context) {
	var req updateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	in := ucRestaurant.UpdateRestaurantInput{
		TradeName: req.TradeName,
		LegalName: req.LegalName,
		CNPJ:      req.CNPJ,
		Phone:     req.Phone,
		Email:     req.Email,
		Category:  req.Category,
	}
	if req.Address != nil {
		in.Address = &ucRestaurant.UpdateAddressInput{
			Street:     req.Address.Street,
			Number:     req.Address.Number,
			Complement: req.Address.Complement,
			District:   req.Address.District,
			City:       req.Address.City,
			State:      req.Address.State,
			ZipCode:    req.Address.ZipCode,
		}
	}

	rest, err := h.updateUC.Execute(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, rest)
}

func (h *RestaurantHandler) Delete(c *gin.Context) {
	if err := h.deleteUC.Execute(c.Request.Context(), c.Param("id")); err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.NoContent(c)
}

type isOpenQuery struct {
	Datetime string `form:"datetime" binding:"required"`
}

func (h *RestaurantHandler) IsOpen(c *gin.Context) {
	var q isOpenQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	at, err := time.Parse(time.RFC3339, q.Datetime)
	if err != nil {
		httperr.FromError(c, httperr.ErrBusiness(httperr.CodeInvalidDatetime))
		return
	}

	opened, err := h.isOpenUC.Execute(c.Request.Context(), c.Param("id"), at)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"opened": opened})
}
