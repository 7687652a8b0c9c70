package http

import (
	"github.com/gin-gonic/gin"

	"property-listing-service/pkg/response"
)

// Search godoc
// @Summary     Search listings
// @Description Runs a criteria search with resilient fallback to cached data. Malformed numeric filters are dropped, not rejected.
// @Tags        Listings
// @Accept      json
// @Produce     json
// @Param       term      query string false "Free-text term matched against title and description"
// @Param       city      query string false "City name (resolved case-insensitively)"
// @Param       type      query string false "Property type name (resolved case-insensitively)"
// @Param       min_price query string false "Minimum price (decimal)"
// @Param       max_price query string false "Maximum price (decimal)"
// @Param       min_beds  query int    false "Minimum number of bedrooms"
// @Param       min_baths query int    false "Minimum number of bathrooms"
// @Param       min_area  query string false "Minimum area (decimal)"
// @Param       max_area  query string false "Maximum area (decimal)"
// @Param       featured  query bool   false "Featured flag"
// @Success     200 {object} listResp
// @Router      /api/v1/listings/search [GET]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	input := h.processSearchReq(c)

	output, err := h.uc.Search(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Search: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newListResp(output.Listings))
}

// List godoc
// @Summary     List all listings
// @Description Returns the bulk listing snapshot, served from cache when warm.
// @Tags        Listings
// @Produce     json
// @Success     200 {object} listResp
// @Router      /api/v1/listings [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	items, err := h.uc.GetAll(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetAll: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newListResp(items))
}

// Featured godoc
// @Summary     List featured listings
// @Description Returns featured listings, served from cache when warm.
// @Tags        Listings
// @Produce     json
// @Success     200 {object} listResp
// @Router      /api/v1/listings/featured [GET]
func (h *handler) Featured(c *gin.Context) {
	ctx := c.Request.Context()

	items, err := h.uc.GetFeatured(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetFeatured: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newListResp(items))
}

// Detail godoc
// @Summary     Get listing detail
// @Description Returns a single listing by its ID.
// @Tags        Listings
// @Produce     json
// @Param       id path string true "Listing ID"
// @Success     200 {object} listingResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/listings/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	item, err := h.uc.GetByID(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.GetByID: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newListingResp(item))
}

// ByCity godoc
// @Summary     List active listings for a city
// @Description Derives active listings for the city from the cached bulk snapshot.
// @Tags        Cities
// @Produce     json
// @Param       id path string true "City ID"
// @Success     200 {object} listResp
// @Router      /api/v1/cities/{id}/listings [GET]
func (h *handler) ByCity(c *gin.Context) {
	ctx := c.Request.Context()

	items, err := h.uc.GetByCity(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.GetByCity: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newListResp(items))
}

// ByType godoc
// @Summary     List active listings for a property type
// @Description Derives active listings for the property type from the cached bulk snapshot.
// @Tags        PropertyTypes
// @Produce     json
// @Param       id path string true "Property type ID"
// @Success     200 {object} listResp
// @Router      /api/v1/property-types/{id}/listings [GET]
func (h *handler) ByType(c *gin.Context) {
	ctx := c.Request.Context()

	items, err := h.uc.GetByType(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.GetByType: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newListResp(items))
}

// ByAgent godoc
// @Summary     List active listings for an agent
// @Description Uses the dedicated per-agent endpoint with fallback to derivation from the bulk snapshot.
// @Tags        Agents
// @Produce     json
// @Param       id path string true "Agent ID"
// @Success     200 {object} listResp
// @Router      /api/v1/agents/{id}/listings [GET]
func (h *handler) ByAgent(c *gin.Context) {
	ctx := c.Request.Context()

	items, err := h.uc.GetByAgentDirect(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.GetByAgentDirect: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newListResp(items))
}

// AgentActiveCount godoc
// @Summary     Count active listings for an agent
// @Description Returns the number of active listings for the agent and whether any exist.
// @Tags        Agents
// @Produce     json
// @Param       id path string true "Agent ID"
// @Success     200 {object} countResp
// @Router      /api/v1/agents/{id}/listings/count [GET]
func (h *handler) AgentActiveCount(c *gin.Context) {
	ctx := c.Request.Context()
	agentID := c.Param("id")

	count, err := h.uc.CountActiveByAgent(ctx, agentID)
	if err != nil {
		h.l.Errorf(ctx, "uc.CountActiveByAgent: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, countResp{
		AgentID: agentID,
		Active:  count,
		HasAny:  count > 0,
	})
}

// Cities godoc
// @Summary     List city names
// @Description Returns the known city names, served from cache when warm.
// @Tags        Cities
// @Produce     json
// @Success     200 {object} namesResp
// @Router      /api/v1/cities [GET]
func (h *handler) Cities(c *gin.Context) {
	ctx := c.Request.Context()

	names, err := h.dir.CityNames(ctx)
	if err != nil {
		h.l.Errorf(ctx, "dir.CityNames: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, namesResp{Names: names})
}

// PropertyTypes godoc
// @Summary     List property type names
// @Description Returns the known property type names, served from cache when warm.
// @Tags        PropertyTypes
// @Produce     json
// @Success     200 {object} namesResp
// @Router      /api/v1/property-types [GET]
func (h *handler) PropertyTypes(c *gin.Context) {
	ctx := c.Request.Context()

	names, err := h.dir.PropertyTypeNames(ctx)
	if err != nil {
		h.l.Errorf(ctx, "dir.PropertyTypeNames: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, namesResp{Names: names})
}

// Create godoc
// @Summary     Create a listing
// @Description Creates a listing through the remote service and evicts the cached snapshots on success.
// @Tags        Listings
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Listing data"
// @Success     200 {object} listingResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/listings [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	item, err := h.uc.Create(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newListingResp(item))
}

// Update godoc
// @Summary     Update a listing
// @Description Updates an existing listing. All fields are optional (partial update).
// @Tags        Listings
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Listing ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/listings/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Update(ctx, input); err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}

// Delete godoc
// @Summary     Delete a listing
// @Description Removes a listing through the remote service and evicts the cached snapshots on success.
// @Tags        Listings
// @Produce     json
// @Param       id path string true "Listing ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/listings/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}
