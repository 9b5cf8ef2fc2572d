package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/iancoleman/strcase"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/nearindexer/arne/internal/app"
	"github.com/nearindexer/arne/internal/core"
	"github.com/nearindexer/arne/near"
)

// @title      		arne
// @version         0.0.1
// @description     Project fetches finalized blocks from NEAR Lake and serves them over HTTP.

// @contact.name   	arne
// @contact.url    	https://github.com/nearindexer/arne

// @license.name  	Apache 2.0
// @license.url   	http://www.apache.org/licenses/LICENSE-2.0.html

// @host      		localhost
// @BasePath  		/api/v1
// @schemes 		http

var basePath = "/api/v1"

var _ QueryController = (*Controller)(nil)

type Controller struct {
	svc app.QueryService
}

func NewController(svc app.QueryService) *Controller {
	return &Controller{svc: svc}
}

func paramErr(ctx *gin.Context, param string, err error) {
	ctx.IndentedJSON(http.StatusBadRequest, gin.H{"param": param, "error": err.Error()})
}

func internalErr(ctx *gin.Context, err error) {
	log.Error().Str("path", ctx.FullPath()).Err(err).Msg("internal server error")
	ctx.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func getOffsetLimit(ctx *gin.Context) (int, int, error) {
	o, err := strconv.ParseInt(ctx.Query("offset"), 10, 64)
	if err != nil {
		return 0, 0, err
	}
	l, err := strconv.ParseInt(ctx.Query("limit"), 10, 64)
	if err != nil {
		return 0, 0, err
	}
	return int(o), int(l), nil
}

// GetBlocks godoc
//	@Summary		indexed blocks
//	@Description	Returns filtered blocks with the total count
//	@Tags			block
//	@Accept			json
//	@Produce		json
//  @Param   		hash	     		query   string 	false   "block hash in base58"
//  @Param   		author	     		query   string 	false   "block producer account id"
//  @Param   		after_height 		query   int 	false   "blocks strictly past this height"
//  @Param   		sort		 		query   string 	false   "height, timestamp or scanned_at"
//  @Param   		order		 		query   string 	false   "ASC or DESC"
//  @Param   		offset	     		query   int 	true	"offset"
//  @Param   		limit	     		query   int 	true	"limit"
//	@Success		200		{object}	core.BlockFiltered
//	@Router			/blocks [get]
func (c *Controller) GetBlocks(ctx *gin.Context) {
	var filter core.BlockFilter

	if err := ctx.ShouldBindQuery(&filter); err != nil {
		paramErr(ctx, "block_filter", err)
		return
	}
	filter.Sort = strcase.ToSnake(filter.Sort)

	if q := ctx.Query("hash"); q != "" {
		h, err := new(near.CryptoHash).FromString(q)
		if err != nil {
			paramErr(ctx, "hash", err)
			return
		}
		filter.Hash = h
	}

	offset, limit, err := getOffsetLimit(ctx)
	if err != nil {
		paramErr(ctx, "offset_limit", err)
		return
	}

	ret, err := c.svc.GetBlocks(ctx, &filter, offset, limit)
	if err != nil {
		internalErr(ctx, err)
		return
	}
	ctx.IndentedJSON(http.StatusOK, ret)
}

// GetLastBlock godoc
//	@Summary		last indexed block
//	@Description	Returns the newest block the indexer has stored
//	@Tags			block
//	@Accept			json
//	@Produce		json
//	@Success		200		{object}	core.Block
//	@Router			/blocks/latest [get]
func (c *Controller) GetLastBlock(ctx *gin.Context) {
	ret, err := c.svc.GetLastBlock(ctx)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			ctx.IndentedJSON(http.StatusNotFound, gin.H{"error": "no blocks indexed so far"})
			return
		}
		internalErr(ctx, err)
		return
	}
	ctx.IndentedJSON(http.StatusOK, ret)
}

// GetStatus godoc
//	@Summary		indexer status
//	@Description	Returns the last indexed height against the finalized height
//	@Tags			status
//	@Accept			json
//	@Produce		json
//	@Success		200		{object}	app.Status
//	@Router			/status [get]
func (c *Controller) GetStatus(ctx *gin.Context) {
	ret, err := c.svc.GetStatus(ctx)
	if err != nil {
		internalErr(ctx, err)
		return
	}
	ctx.IndentedJSON(http.StatusOK, ret)
}
