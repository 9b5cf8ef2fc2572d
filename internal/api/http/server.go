package http

import (
	"net/http"

	_ "github.com/nearindexer/arne/api/http"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
)

type QueryController interface {
	GetBlocks(*gin.Context)
	GetLastBlock(*gin.Context)

	GetStatus(*gin.Context)
}

type Server struct {
	listenHost string
	router     *gin.Engine
}

func NewServer(host string) *Server {
	return &Server{listenHost: host, router: gin.Default()}
}

func (s *Server) RegisterRoutes(t QueryController) {
	base := s.router.Group(basePath)

	base.GET("/blocks", t.GetBlocks)
	base.GET("/blocks/latest", t.GetLastBlock)

	base.GET("/status", t.GetStatus)

	base.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL(basePath+"/swagger/doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1)))

	base.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, basePath+"swagger/index.html")
	})
}

func (s *Server) Run() error {
	return s.router.Run(s.listenHost)
}
