package ftracker

import (
	"fmt"
	"strconv"
	"strings"
)

// Record is a single workout package: type code and ordered readings.
// Text form is CODE:a,b,c, for example SWM:720,1,80,25,40.
type Record struct {
	Code string
	Data []float64
}

// SamplePackages are the reference readings processed when no input is given.
var SamplePackages = []Record{
	{Code: string(CodeSwimming), Data: []float64{720, 1, 80, 25, 40}},
	{Code: string(CodeRunning), Data: []float64{15000, 1, 75}},
	{Code: string(CodeSportsWalking), Data: []float64{9000, 1, 75, 180}},
}

// ParseRecord parses a record from its text form.
func ParseRecord(s string) (Record, error) {
	code, values, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || code == "" {
		return Record{}, fmt.Errorf("%w: %q", ErrMalformedRecord, s)
	}

	var data []float64
	if strings.TrimSpace(values) != "" {
		for _, field := range strings.Split(values, ",") {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return Record{}, fmt.Errorf("%w: %q: %v", ErrMalformedRecord, s, err)
			}
			data = append(data, v)
		}
	}

	return Record{Code: strings.TrimSpace(code), Data: data}, nil
}

// Workout builds the workout described by r.
func (r Record) Workout() (Workout, error) {
	return ReadPackage(r.Code, r.Data)
}

func (r Record) String() string {
	fields := make([]string, 0, len(r.Data))
	for _, v := range r.Data {
		fields = append(fields, strconv.FormatFloat(v, 'f', -1, 64))
	}
	return r.Code + ":" + strings.Join(fields, ",")
}
