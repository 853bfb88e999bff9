package serve

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bgraf/tagwerk/tags"
)

// tagsRequest carries the tag payload of a dashboard call. Tags may be any
// shape the ingestion boundary accepts: comma string, JSON-encoded array,
// nested array, or a proper list.
type tagsRequest struct {
	Tags interface{} `json:"tags"`
}

func (api *serveAPI) readTags(c *gin.Context) ([]string, bool) {
	var req tagsRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}

	return tags.CleanForStorage(tags.ParseInput(req.Tags)), true
}

func (api *serveAPI) ServeHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (api *serveAPI) ServeAliases(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"groups": api.norm.Dictionary().Groups(),
	})
}

func (api *serveAPI) ServeNormalize(c *gin.Context) {
	raws, ok := api.readTags(c)
	if !ok {
		return
	}

	keys := make(map[string]string, len(raws))
	for _, raw := range raws {
		keys[raw] = api.norm.Key(raw)
	}

	c.JSON(http.StatusOK, gin.H{
		"tags": api.norm.NormalizeTags(raws),
		"keys": keys,
	})
}

func (api *serveAPI) ServeSimilar(c *gin.Context) {
	raws, ok := api.readTags(c)
	if !ok {
		return
	}

	similar := api.norm.FindSimilar(raws)
	if similar == nil {
		similar = []tags.Group{}
	}

	c.JSON(http.StatusOK, gin.H{"groups": similar})
}

func (api *serveAPI) ServeStatistics(c *gin.Context) {
	raws, ok := api.readTags(c)
	if !ok {
		return
	}

	statistics := api.norm.Statistics(raws)
	if statistics.Duplicates == nil {
		statistics.Duplicates = []tags.DuplicateCount{}
	}
	if statistics.Similar == nil {
		statistics.Similar = []tags.Group{}
	}

	colors := make(map[string]string)
	for _, raw := range raws {
		if key := api.norm.Key(raw); key != "" {
			colors[key] = api.tagSet.HexColor(raw)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"report": statistics,
		"colors": colors,
	})
}
