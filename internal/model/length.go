package model

import "fmt"

type VideoLength string

const (
	Length15s    VideoLength = "15s"
	Length30s    VideoLength = "30s"
	Length1m     VideoLength = "1m"
	Length2to3m  VideoLength = "2-3m"
	Length5mPlus VideoLength = "5m+"
)

type lengthInfo struct {
	seconds     int
	label       string
	description string
}

// 2-3m and 5m+ collapse a range onto a single representative value.
var lengthTable = map[VideoLength]lengthInfo{
	Length15s:    {15, "15 Seconds", "Perfect for short-form content like TikTok or Instagram Reels"},
	Length30s:    {30, "30 Seconds", "Ideal for quick news updates and social media posts"},
	Length1m:     {60, "1 Minute", "Good for concise topic coverage with key points"},
	Length2to3m:  {150, "2-3 Minutes", "Detailed coverage with supporting information"},
	Length5mPlus: {300, "5+ Minutes", "In-depth analysis and comprehensive coverage"},
}

// Lengths returns the selectable options in display order.
func Lengths() []VideoLength {
	return []VideoLength{Length15s, Length30s, Length1m, Length2to3m, Length5mPlus}
}

// Seconds panics on a label outside the closed set.
func (l VideoLength) Seconds() int {
	info, ok := lengthTable[l]
	if !ok {
		panic(fmt.Sprintf("model: unknown video length %q", string(l)))
	}
	return info.seconds
}

func (l VideoLength) Label() string       { return lengthTable[l].label }
func (l VideoLength) Description() string { return lengthTable[l].description }

func (l VideoLength) Valid() bool {
	_, ok := lengthTable[l]
	return ok
}

func ParseVideoLength(s string) (VideoLength, error) {
	l := VideoLength(s)
	if !l.Valid() {
		return "", fmt.Errorf("unknown video length %q", s)
	}
	return l, nil
}
