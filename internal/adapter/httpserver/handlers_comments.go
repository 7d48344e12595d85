package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/enrico07/feddit-api/internal/domain"
	"github.com/enrico07/feddit-api/internal/metrics"
	apperrors "github.com/enrico07/feddit-api/internal/platform/errors"
)

// dateLayout is the DD-MM-YYYY calendar-date format accepted by the API.
const dateLayout = "02-01-2006"

type commentResponse struct {
	ID                     int64   `json:"id"`
	Text                   string  `json:"text"`
	PolarityScore          float64 `json:"polarity_score"`
	PolarityClassification string  `json:"polarity_classification"`
}

func (s *Server) handleGetComments(c echo.Context) error {
	ctx := c.Request().Context()
	timer := prometheus.NewTimer(metrics.CommentsRequestDuration)
	defer timer.ObserveDuration()

	filter, err := parseCommentFilter(c)
	if err != nil {
		metrics.CommentsRequestsTotal.WithLabelValues("validation").Inc()
		return err
	}

	comments, err := s.app.GetComments(ctx, filter)
	if errors.Is(err, domain.ErrSubfedditNotFound) {
		metrics.CommentsRequestsTotal.WithLabelValues("not_found").Inc()
		return apperrors.NotFoundError("subfeddit not found").
			WithField("subfeddit_name", filter.Subfeddit)
	}
	if err != nil {
		// Generic message only; the cause is logged, never sent to clients.
		metrics.CommentsRequestsTotal.WithLabelValues("internal").Inc()
		return apperrors.InternalError("failed to fetch comments", err).
			WithField("subfeddit_name", filter.Subfeddit)
	}

	metrics.CommentsRequestsTotal.WithLabelValues("ok").Inc()
	metrics.CommentsReturned.Observe(float64(len(comments)))

	response := make([]commentResponse, 0, len(comments))
	for _, comment := range comments {
		response = append(response, commentResponse{
			ID:                     comment.ID,
			Text:                   comment.Text,
			PolarityScore:          comment.PolarityScore,
			PolarityClassification: string(comment.PolarityClassification),
		})
	}

	if err := c.JSON(http.StatusOK, response); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

// parseCommentFilter validates all query parameters before any storage
// access happens.
func parseCommentFilter(c echo.Context) (domain.CommentFilter, error) {
	name := c.QueryParam("subfeddit_name")
	if name == "" {
		return domain.CommentFilter{}, apperrors.ValidationError("subfeddit_name is required")
	}

	filter := domain.NewCommentFilter(name)

	if raw := c.QueryParam("n_comments"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return filter, apperrors.ValidationError("n_comments must be a non-negative integer").
				WithField("n_comments", raw)
		}
		filter.Limit = n
	}

	if raw := c.QueryParam("from_date"); raw != "" {
		day, err := time.ParseInLocation(dateLayout, raw, time.Local)
		if err != nil {
			return filter, apperrors.ValidationError("from_date must be a DD-MM-YYYY date").
				WithField("from_date", raw)
		}
		filter.From = &day
	}

	if raw := c.QueryParam("to_date"); raw != "" {
		// Resolves to midnight of that day, matching the behavior clients of
		// the original API rely on.
		day, err := time.ParseInLocation(dateLayout, raw, time.Local)
		if err != nil {
			return filter, apperrors.ValidationError("to_date must be a DD-MM-YYYY date").
				WithField("to_date", raw)
		}
		filter.To = &day
	}

	switch raw := c.QueryParam("polarity_sorting"); raw {
	case "":
	case "asc":
		filter.Sort = domain.SortAscending
	case "desc":
		filter.Sort = domain.SortDescending
	default:
		return filter, apperrors.ValidationError("polarity_sorting must be \"asc\" or \"desc\"").
			WithField("polarity_sorting", raw)
	}

	if raw := c.QueryParam("min_polarity"); raw != "" {
		minPolarity, err := strconv.ParseFloat(raw, 64)
		if err != nil || minPolarity < -1 || minPolarity > 1 {
			return filter, apperrors.ValidationError("min_polarity must be a number within [-1, 1]").
				WithField("min_polarity", raw)
		}
		filter.MinPolarity = minPolarity
	}

	if raw := c.QueryParam("max_polarity"); raw != "" {
		maxPolarity, err := strconv.ParseFloat(raw, 64)
		if err != nil || maxPolarity < -1 || maxPolarity > 1 {
			return filter, apperrors.ValidationError("max_polarity must be a number within [-1, 1]").
				WithField("max_polarity", raw)
		}
		filter.MaxPolarity = maxPolarity
	}

	if filter.MinPolarity > filter.MaxPolarity {
		return filter, apperrors.ValidationError("min_polarity must not exceed max_polarity").
			WithField("min_polarity", filter.MinPolarity).
			WithField("max_polarity", filter.MaxPolarity)
	}

	return filter, nil
}
