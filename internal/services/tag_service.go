package services

import (
	"regexp"
	"sort"
	"strings"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"datewise/internal/models/response_models"
	"datewise/pkg/utils"
)

// TaggingInput is what the tagging engine reads for one venue.
type TaggingInput struct {
	Types      []string `json:"types" validate:"omitempty,dive,required"`
	PriceLevel *int     `json:"priceLevel" validate:"omitempty,gte=0,lte=4"`
	Snippets   []string `json:"snippets" validate:"omitempty,dive,required"`
}

type TagServiceInterface interface {
	InferTags(input TaggingInput) ([]response_models.Tag, error)
	ListTags() []response_models.TagResponse
}

type TagService struct{}

func NewTagService() TagServiceInterface {
	return &TagService{}
}

var typeTags = map[string][]response_models.Tag{
	"museum":             {response_models.TagArtsy},
	"art_gallery":        {response_models.TagArtsy},
	"tourist_attraction": {response_models.TagIconic, response_models.TagDateNight},
	"park":               {response_models.TagNature, response_models.TagRomantic},
	"botanical_garden":   {response_models.TagNature, response_models.TagRomantic},
	"cafe":               {response_models.TagCozy, response_models.TagDateNight},
	"bakery":             {response_models.TagCozy},
}

type snippetSignal struct {
	pattern *regexp.Regexp
	tags    []response_models.Tag
}

// Applied in order to the joined, lower-cased snippets.
var snippetSignals = []snippetSignal{
	{
		pattern: regexp.MustCompile(`(?i)\b(date\s*night|couple|anniversary|intimate)\b`),
		tags:    []response_models.Tag{response_models.TagDateNight, response_models.TagRomantic},
	},
	{
		pattern: regexp.MustCompile(`(?i)\b(romantic|sunset|candle)\b`),
		tags:    []response_models.Tag{response_models.TagRomantic},
	},
	{
		pattern: regexp.MustCompile(`(?i)\b(cozy|quiet|relaxing)\b`),
		tags:    []response_models.Tag{response_models.TagCozy},
	},
	{
		pattern: regexp.MustCompile(`(?i)\b(loud|noisy|blasting\s+music)\b`),
		tags:    []response_models.Tag{response_models.TagLoud},
	},
	{
		pattern: regexp.MustCompile(`(?i)\b(crowded|packed|long\s+queue|busy)\b`),
		tags:    []response_models.Tag{response_models.TagCrowded},
	},
}

// foldText lower-cases s and strips diacritics so "Cozy Café" and
// "cozy cafe" produce the same signals.
func foldText(s string) string {
	return cases.Lower(language.Und).String(unidecode.Unidecode(s))
}

func normalizeType(t string) string {
	return foldText(strings.TrimSpace(t))
}

// InferTags returns the tags implied by input, deduplicated and sorted.
// It is a pure function of input.
func (s *TagService) InferTags(input TaggingInput) ([]response_models.Tag, error) {
	if issues := utils.ValidateStruct(input); issues != nil {
		return nil, &utils.ExternalError{
			Kind:    utils.ErrInvalidTaggingInput,
			Message: "Invalid tagging input.",
			Details: issues,
		}
	}

	set := make(map[response_models.Tag]struct{})
	add := func(tags ...response_models.Tag) {
		for _, t := range tags {
			set[t] = struct{}{}
		}
	}

	for _, raw := range input.Types {
		add(typeTags[normalizeType(raw)]...)
	}

	if input.PriceLevel != nil {
		if *input.PriceLevel <= 1 {
			add(response_models.TagBudgetFriendly)
		}
		if *input.PriceLevel >= 3 {
			add(response_models.TagPremium)
		}
	}

	if len(input.Snippets) > 0 {
		combined := foldText(strings.Join(input.Snippets, " "))
		for _, signal := range snippetSignals {
			if signal.pattern.MatchString(combined) {
				add(signal.tags...)
			}
		}
	}

	out := make([]response_models.Tag, 0, len(set))
	for t := range set {
		if t.Valid() {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out, nil
}

func (s *TagService) ListTags() []response_models.TagResponse {
	tags := make([]response_models.TagResponse, 0, len(response_models.AllTags))
	for _, t := range response_models.AllTags {
		tags = append(tags, response_models.TagResponse{Name: string(t)})
	}
	return tags
}
