package elevmetadata

import (
	"encoding/json"

	"github.com/xyproto/randomstring"

	"github.com/heislab/elevator-simulator/internal/logger"
)

var Log = logger.GetLogger()

const IDENTIFIER_DEFAULT_LEN = 10

type RunReport struct {
	SoftwareVersion string `json:"software_version"`
	Identifier      string `json:"identifier"`
	Scenario        string `json:"scenario,omitempty"`
	NumberOfFloors  int    `json:"number_of_floors"`
	InitialFloor    int    `json:"initial_floor"`
	FinalFloor      int    `json:"final_floor"`
	VisitedFloors   []int  `json:"visited_floors"`
	Error           string `json:"error,omitempty"`
}

// NewIdentifier returns identifier, or a random one when it is empty.
func NewIdentifier(identifier string) string {
	if identifier == "" {
		identifier = randomstring.EnglishFrequencyString(IDENTIFIER_DEFAULT_LEN) //this should be random enough
		Log.Debug().Msgf("No identifier provided, generated random identifier \"%v\"", identifier)
	}
	return identifier
}

func (report *RunReport) Failed() bool {
	return report.Error != ""
}

func (report *RunReport) String() string {
	jsonData, err := json.Marshal(report)

	if err != nil {
		Log.Error().Msg("Error Serialising RunReport Object to JSON")
		return ""
	}
	return string(jsonData)
}
