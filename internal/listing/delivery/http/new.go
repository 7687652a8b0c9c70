package http

import (
	"github.com/gin-gonic/gin"

	"property-listing-service/internal/listing"
	"property-listing-service/internal/refdata"
	"property-listing-service/pkg/log"
)

// Handler is the public interface for the listing HTTP delivery layer.
type Handler interface {
	Search(c *gin.Context)
	List(c *gin.Context)
	Featured(c *gin.Context)
	Detail(c *gin.Context)
	ByCity(c *gin.Context)
	ByType(c *gin.Context)
	ByAgent(c *gin.Context)
	AgentActiveCount(c *gin.Context)
	Cities(c *gin.Context)
	PropertyTypes(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l   log.Logger
	uc  listing.UseCase
	dir refdata.Directory
}

// New creates a new HTTP handler for the listing domain.
func New(l log.Logger, uc listing.UseCase, dir refdata.Directory) *handler {
	return &handler{
		l:   l,
		uc:  uc,
		dir: dir,
	}
}
