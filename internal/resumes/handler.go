package resumes

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-analyzer/internal/extract"
	"resume-analyzer/internal/shared/server/respond"
	"resume-analyzer/internal/shared/telemetry"
	"resume-analyzer/internal/shared/util"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires HTTP handlers to the analysis service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes", h.analyze)
	rg.GET("/resumes", h.list)
}

func (h *Handler) analyze(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	sub, ok := h.buildSubmission(c)
	if !ok {
		return
	}

	record, err := h.Svc.Analyze(c.Request.Context(), sub)
	if err != nil {
		switch {
		case errors.Is(err, ErrTextTooShort):
			respond.Error(c, http.StatusBadRequest, ErrorCodeValidation,
				"Could not extract at least 30 readable characters of resume text", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, ErrorCodeStorage,
				"Resume was analyzed but the result could not be saved", nil)
		}
		return
	}

	c.Set("resumeId", record.ID)
	respond.Created(c, gin.H{
		"message":        "Resume analyzed successfully",
		"data":           toResponse(record),
		"classification": record.Classification,
		"jobMatch":       record.JobMatch,
		"feedback":       record.Feedback,
	})
}

func (h *Handler) list(c *gin.Context) {
	records, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, ErrorCodeStorage, "Failed to fetch resumes", nil)
		return
	}

	out := make([]resumeResponse, 0, len(records))
	for _, record := range records {
		out = append(out, toResponse(record))
	}
	respond.OK(c, out)
}

// buildSubmission validates form fields and resolves the text source: an
// uploaded document wins, otherwise text is synthesized from the manual
// fields. Writes the error response itself and returns ok=false on failure.
func (h *Handler) buildSubmission(c *gin.Context) (Submission, bool) {
	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "name is required", nil)
		return Submission{}, false
	}
	email := strings.TrimSpace(c.PostForm("email"))
	if email == "" {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "email is required", nil)
		return Submission{}, false
	}

	rawExperience, hasExperience := c.GetPostForm("experience")
	if !hasExperience || strings.TrimSpace(rawExperience) == "" {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "experience is required", nil)
		return Submission{}, false
	}
	experience, err := strconv.ParseFloat(strings.TrimSpace(rawExperience), 64)
	if err != nil || experience < 0 {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "experience must be a non-negative number", nil)
		return Submission{}, false
	}

	var skills []string
	if rawSkills, hasSkills := c.GetPostForm("skills"); hasSkills {
		skills = splitSkills(rawSkills)
	}

	sub := Submission{
		Name:            name,
		Email:           email,
		ExperienceYears: experience,
		Skills:          skills,
		JobDescription:  strings.TrimSpace(c.PostForm("jobDescription")),
	}

	rawText, source, ok := h.resolveText(c, sub)
	if !ok {
		return Submission{}, false
	}
	sub.RawText = rawText
	sub.Source = source
	return sub, true
}

func (h *Handler) resolveText(c *gin.Context, sub Submission) (string, TextSource, bool) {
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return synthesizeText(sub), SourceManualFields, true
		}
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "unable to read resume file", nil)
		return "", "", false
	}

	fileName, err := util.SanitizeFileName(fileHeader.Filename)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "invalid resume file name", nil)
		return "", "", false
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "unable to read resume file", nil)
		return "", "", false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "unable to read resume file", nil)
		return "", "", false
	}

	text, err := extract.FromBytes(c.Request.Context(), data, fileHeader.Header.Get("Content-Type"), fileName)
	if err != nil {
		if errors.Is(err, extract.ErrUnsupported) {
			respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "resume file must be a PDF or DOCX document", nil)
			return "", "", false
		}
		telemetry.Warn("resume.extract_failed", map[string]any{
			"file_name": fileName,
			"error":     err.Error(),
		})
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "could not extract readable text from the resume file", nil)
		return "", "", false
	}

	return text, SourceDocument, true
}

func splitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}

// synthesizeText builds analyzable text from the manual fields when no
// document was uploaded.
func synthesizeText(sub Submission) string {
	var b strings.Builder
	b.WriteString(sub.Name)
	b.WriteString(".")
	if len(sub.Skills) > 0 {
		b.WriteString(" Skills: ")
		b.WriteString(strings.Join(sub.Skills, ", "))
		b.WriteString(".")
	}
	fmt.Fprintf(&b, " %g years of professional experience.", sub.ExperienceYears)
	return b.String()
}
