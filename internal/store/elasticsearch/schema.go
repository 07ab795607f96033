package elasticsearch

import "fmt"

// used as body to create index requests
var indexSettingsTemplate = `{
	"mappings": %s,
	"settings": {
		"number_of_shards": 1,
		"number_of_replicas": 0
	}
}`

var courseIndexMapping = `{
	"properties": {
		"id": {
			"type": "keyword"
		},
		"title": {
			"type": "text",
			"analyzer": "standard",
			"fields": {
				"keyword": {
					"type": "keyword",
					"ignore_above": 256
				}
			}
		},
		"description": {
			"type": "text",
			"analyzer": "standard"
		},
		"category": {
			"type": "keyword"
		},
		"type": {
			"type": "keyword"
		},
		"gradeRange": {
			"type": "keyword"
		},
		"minAge": {
			"type": "integer"
		},
		"maxAge": {
			"type": "integer"
		},
		"price": {
			"type": "double"
		},
		"nextSessionDate": {
			"type": "date",
			"format": "yyyy-MM-dd'T'HH:mm:ss||yyyy-MM-dd'T'HH:mm:ss.SSS||strict_date_optional_time||epoch_millis"
		},
		"titleSuggest": {
			"type": "search_as_you_type"
		},
		"suggest": {
			"type": "completion",
			"analyzer": "simple",
			"max_input_length": 50
		}
	}
}`

func buildIndexSettings() string {
	return fmt.Sprintf(indexSettingsTemplate, courseIndexMapping)
}
