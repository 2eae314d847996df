package subtitle

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/dimchansky/utfbom"

	"github.com/arielfikru/NekkoSub/internal/model"
)

const dialogueMarker = "Dialogue:"

// index for acessing splitted ass dialogue line
const (
	assDialogueLineLayerIndex = iota
	assDialogueLineStartIndex
	assDialogueLineEndIndex
	textIndex = 9
)

// ExtractDialogues scans src line by line and collects Dialogue event
// lines. Only lines starting with the literal "Dialogue:" marker are
// considered; everything else ([Script Info], styles, comments, blanks)
// is ignored. A marker line whose comma structure is too short is
// skipped without error. Output order is source order.
func ExtractDialogues(src io.Reader) ([]model.Dialogue, error) {
	// Subtitle files in the wild often start with a BOM; skip it so the
	// first line can still match the marker.
	scanner := bufio.NewScanner(utfbom.SkipOnly(src))
	// Karaoke/typesetting lines can get long
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var dialogues []model.Dialogue
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, dialogueMarker) {
			continue
		}
		// Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text
		// Dialogue: 0,0:00:04.87,0:00:06.00,Default,,0,0,0,,{\i1}The president,of every bank
		// Split into 10 parts. May exist commas in text, so use SplitN.
		parts := strings.SplitN(strings.TrimPrefix(line, dialogueMarker), ",", 10)
		if len(parts) < 10 {
			// Not enough fields; drop the line and keep going.
			continue
		}
		dialogues = append(dialogues, model.Dialogue{
			StartTime: parts[assDialogueLineStartIndex],
			EndTime:   parts[assDialogueLineEndIndex],
			Text:      strings.TrimSpace(parts[textIndex]),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}
	return dialogues, nil
}
