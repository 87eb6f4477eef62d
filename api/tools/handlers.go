package tools

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/eugenechae/podcast-index-mcp/api/types"
	"github.com/eugenechae/podcast-index-mcp/internal/services/podcastindex"
	apperrors "github.com/eugenechae/podcast-index-mcp/pkg/errors"
	"github.com/gin-gonic/gin"
)

// callTimeout bounds a single tool invocation end to end.
const callTimeout = 30 * time.Second

// List handles tool discovery requests
// @Summary      List available tools
// @Description  Returns the catalog of callable tools with their input schemas
// @Tags         tools
// @Produce      json
// @Success      200 {object} types.ToolsResponse "Tool catalog"
// @Router       /api/v1/tools [get]
func List() gin.HandlerFunc {
	return func(c *gin.Context) {
		catalog := Catalog()
		c.JSON(http.StatusOK, types.ToolsResponse{
			Tools: catalog,
			Count: len(catalog),
		})
	}
}

// Call dispatches a tool invocation to the Podcast Index client
// @Summary      Invoke a tool
// @Description  Invokes the named tool with JSON arguments and returns the normalized result
// @Tags         tools
// @Accept       json
// @Produce      json
// @Param        name path string true "Tool name"
// @Param        arguments body object true "Tool arguments"
// @Success      200 {object} object "Normalized result"
// @Failure      400 {object} types.ErrorResponse "Invalid arguments"
// @Failure      404 {object} types.ErrorResponse "Unknown tool"
// @Failure      502 {object} types.ErrorResponse "Transport or upstream failure"
// @Failure      504 {object} types.ErrorResponse "Upstream call timed out"
// @Router       /api/v1/tools/{name} [post]
func Call(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")

		invoke, ok := invocations[name]
		if !ok {
			c.JSON(http.StatusNotFound, types.ErrorResponse{
				Status:  types.StatusError,
				Kind:    string(apperrors.ErrCodeValidation),
				Message: "unknown tool: " + name,
			})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), callTimeout)
		defer cancel()

		result, err := invoke(ctx, c, deps.PodcastClient)
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// invocation decodes one tool's arguments from the request and executes it.
type invocation func(ctx context.Context, c *gin.Context, client types.PodcastClient) (interface{}, error)

var invocations = map[string]invocation{
	"search_podcasts": func(ctx context.Context, c *gin.Context, client types.PodcastClient) (interface{}, error) {
		var req types.SearchPodcastsRequest
		if err := bindArguments(c, &req); err != nil {
			return nil, err
		}
		return client.SearchPodcasts(ctx, podcastindex.SearchParams{
			Query:    req.Query,
			Max:      req.Max,
			Val:      req.Val,
			Clean:    req.Clean,
			FullText: req.FullText,
			APOnly:   req.APOnly,
			Similar:  req.Similar,
		})
	},
	"search_podcasts_by_title": func(ctx context.Context, c *gin.Context, client types.PodcastClient) (interface{}, error) {
		var req types.SearchPodcastsByTitleRequest
		if err := bindArguments(c, &req); err != nil {
			return nil, err
		}
		return client.SearchPodcastsByTitle(ctx, podcastindex.SearchByTitleParams{
			Query:    req.Query,
			Max:      req.Max,
			Val:      req.Val,
			Clean:    req.Clean,
			FullText: req.FullText,
			Similar:  req.Similar,
		})
	},
	"search_episodes_by_person": func(ctx context.Context, c *gin.Context, client types.PodcastClient) (interface{}, error) {
		var req types.SearchEpisodesByPersonRequest
		if err := bindArguments(c, &req); err != nil {
			return nil, err
		}
		return client.SearchEpisodesByPerson(ctx, podcastindex.SearchByPersonParams{
			Person:   req.Person,
			Max:      req.Max,
			FullText: req.FullText,
		})
	},
	"get_episodes_by_feed": func(ctx context.Context, c *gin.Context, client types.PodcastClient) (interface{}, error) {
		var req types.GetEpisodesByFeedRequest
		if err := bindArguments(c, &req); err != nil {
			return nil, err
		}
		return client.EpisodesByFeedID(ctx, podcastindex.EpisodesByFeedParams{
			FeedID:   req.FeedID,
			Since:    req.Since,
			Max:      req.Max,
			FullText: req.FullText,
		})
	},
	"get_podcast_by_id": func(ctx context.Context, c *gin.Context, client types.PodcastClient) (interface{}, error) {
		var req types.GetPodcastByIDRequest
		if err := bindArguments(c, &req); err != nil {
			return nil, err
		}
		return client.PodcastByFeedID(ctx, podcastindex.PodcastByFeedIDParams{FeedID: req.FeedID})
	},
	"get_episode_by_id": func(ctx context.Context, c *gin.Context, client types.PodcastClient) (interface{}, error) {
		var req types.GetEpisodeByIDRequest
		if err := bindArguments(c, &req); err != nil {
			return nil, err
		}
		return client.EpisodeByID(ctx, podcastindex.EpisodeByIDParams{
			EpisodeID: req.EpisodeID,
			FullText:  req.FullText,
		})
	},
}

func bindArguments(c *gin.Context, target interface{}) error {
	if err := c.ShouldBindJSON(target); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid tool arguments")
	}
	return nil
}

func writeError(c *gin.Context, err error) {
	resp := types.ErrorResponse{
		Status:  types.StatusError,
		Kind:    string(apperrors.GetCode(err)),
		Message: err.Error(),
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		resp.Message = appErr.Message
		resp.Details = appErr.Details
	}
	c.JSON(apperrors.GetHTTPCode(err), resp)
}
