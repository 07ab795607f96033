package server

//go:generate mockery --name=CourseService -r --case underscore --with-expecter --structname CourseService --filename course_service.go --output=./mocks

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/goto/coursefinder/core/course"
	"github.com/goto/coursefinder/core/validator"
	"github.com/goto/salt/log"
)

const serviceName = "Course Search Engine"

type CourseService interface {
	Search(ctx context.Context, cfg course.SearchCriteria) (course.SearchResult, error)
	Suggest(ctx context.Context, prefix string) []string
	Reindex(ctx context.Context) (course.IndexReport, error)
}

type CourseHandler struct {
	logger  log.Logger
	service CourseService
}

func NewCourseHandler(logger log.Logger, service CourseService) *CourseHandler {
	return &CourseHandler{
		logger:  logger,
		service: service,
	}
}

type searchRequest struct {
	Text      string     `json:"q"`
	MinAge    *int       `json:"minAge" validate:"omitempty,gte=0"`
	MaxAge    *int       `json:"maxAge" validate:"omitempty,gte=0"`
	Category  string     `json:"category"`
	Type      string     `json:"type"`
	MinPrice  *float64   `json:"minPrice" validate:"omitempty,gte=0"`
	MaxPrice  *float64   `json:"maxPrice" validate:"omitempty,gte=0"`
	StartDate *time.Time `json:"startDate"`
	Sort      string     `json:"sort"`
	Page      *int       `json:"page" validate:"omitempty,gte=0"`
	Size      *int       `json:"size" validate:"omitempty,gte=1,lte=100"`
}

type suggestResponse struct {
	Suggestions []string `json:"suggestions"`
}

type reindexResponse struct {
	Message string `json:"message"`
	course.IndexReport
}

type reindexErrorResponse struct {
	Error string `json:"error"`
}

type healthResponse struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Timestamp time.Time `json:"timestamp"`
}

func (h *CourseHandler) Search(w http.ResponseWriter, r *http.Request) {
	req, err := parseSearchRequest(r.URL.Query())
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.logger.Debug("search request", "query", req.Text, "category", req.Category, "type", req.Type, "sort", req.Sort)
	cfg := course.RawCriteria{
		Text:      req.Text,
		MinAge:    req.MinAge,
		MaxAge:    req.MaxAge,
		Category:  req.Category,
		Type:      req.Type,
		MinPrice:  req.MinPrice,
		MaxPrice:  req.MaxPrice,
		StartDate: req.StartDate,
		Sort:      req.Sort,
		Page:      req.Page,
		PageSize:  req.Size,
	}.Normalize(h.logger)

	result, err := h.service.Search(r.Context(), cfg)
	if err != nil {
		internalServerError(w, h.logger, fmt.Sprintf("error searching courses: %s", err))
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *CourseHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	prefix := strings.TrimSpace(r.URL.Query().Get("q"))
	if utf8.RuneCountInString(prefix) < course.MinSuggestPrefixLength {
		writeJSON(w, http.StatusBadRequest, suggestResponse{Suggestions: []string{}})
		return
	}

	suggestions := h.service.Suggest(r.Context(), prefix)
	if suggestions == nil {
		suggestions = []string{}
	}
	writeJSON(w, http.StatusOK, suggestResponse{Suggestions: suggestions})
}

func (h *CourseHandler) Reindex(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.Reindex(r.Context())
	if err != nil {
		if errors.Is(err, course.ErrReindexInProgress) {
			writeJSON(w, http.StatusConflict, reindexErrorResponse{Error: err.Error()})
			return
		}
		h.logger.Error("error reindexing courses", "err", err)
		writeJSON(w, http.StatusInternalServerError, reindexErrorResponse{
			Error: fmt.Sprintf("Failed to reindex data: %s", err),
		})
		return
	}

	writeJSON(w, http.StatusOK, reindexResponse{
		Message:     "Data reindexed successfully",
		IndexReport: report,
	})
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "UP",
		Service:   serviceName,
		Timestamp: time.Now().UTC(),
	})
}

func parseSearchRequest(params url.Values) (req searchRequest, err error) {
	req.Text = strings.TrimSpace(params.Get("q"))
	req.Category = strings.TrimSpace(params.Get("category"))
	req.Type = strings.TrimSpace(params.Get("type"))
	req.Sort = strings.TrimSpace(params.Get("sort"))

	if req.MinAge, err = intParam(params, "minAge"); err != nil {
		return req, err
	}
	if req.MaxAge, err = intParam(params, "maxAge"); err != nil {
		return req, err
	}
	if req.MinPrice, err = floatParam(params, "minPrice"); err != nil {
		return req, err
	}
	if req.MaxPrice, err = floatParam(params, "maxPrice"); err != nil {
		return req, err
	}
	if req.Page, err = intParam(params, "page"); err != nil {
		return req, err
	}
	if req.Size, err = intParam(params, "size"); err != nil {
		return req, err
	}

	if raw := strings.TrimSpace(params.Get("startDate")); raw != "" {
		date, err := course.ParseDate(raw)
		if err != nil {
			return req, fmt.Errorf("invalid startDate %q: %w", raw, err)
		}
		req.StartDate = &date
	}

	return req, nil
}

func intParam(params url.Values, key string) (*int, error) {
	raw := strings.TrimSpace(params.Get(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: must be an integer", key, raw)
	}
	return &v, nil
}

func floatParam(params url.Values, key string) (*float64, error) {
	raw := strings.TrimSpace(params.Get(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: must be a number", key, raw)
	}
	return &v, nil
}
