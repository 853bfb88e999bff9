package serve

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/bgraf/tagwerk/config"
	"github.com/bgraf/tagwerk/report"
	"github.com/bgraf/tagwerk/tags"
)

func RunServeCmd(cmd *cobra.Command, args []string) error {
	norm, err := config.Normalizer()
	if err != nil {
		return err
	}

	r := gin.New()
	r.Use(gin.Recovery())

	api := newServeAPI(norm)
	r.GET("/healthz", api.ServeHealth)
	r.GET("/api/aliases", api.ServeAliases)
	r.POST("/api/normalize", api.ServeNormalize)
	r.POST("/api/similar", api.ServeSimilar)
	r.POST("/api/statistics", api.ServeStatistics)

	address := config.ServeAddress()
	log.Printf("listening on %s", address)

	if err = r.Run(address); err != nil {
		log.Fatal(err)
	}

	return nil
}

type serveAPI struct {
	norm   *tags.Normalizer
	tagSet *report.TagSet
}

func newServeAPI(norm *tags.Normalizer) *serveAPI {
	return &serveAPI{
		norm:   norm,
		tagSet: report.NewTagSet(norm),
	}
}
