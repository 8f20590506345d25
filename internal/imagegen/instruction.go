package imagegen

import "fmt"

// editSystemInstruction pins the model to image output. The black-=edit,
// white-=preserve convention is prompt-level, not an API feature, so it has
// to be restated here and in the per-request instruction.
const editSystemInstruction = "You are an expert photo editing engine. " +
	"Always respond with the edited image only; never reply with conversational text. " +
	"When a black-and-white mask image is provided, apply the requested edit exclusively " +
	"to the regions painted BLACK in the mask and reproduce the WHITE regions of the " +
	"original image without any change."

// EditInstruction builds the text part of an edit request. Without a mask the
// user's prompt is forwarded verbatim. With a mask the prompt is embedded in
// an instruction that spells out the black/white region convention.
func EditInstruction(prompt string, masked bool) string {
	if !masked {
		return prompt
	}
	return fmt.Sprintf("A black-and-white mask image is provided alongside the photo. "+
		"Apply the following edit only within the BLACK regions of the mask and keep the "+
		"WHITE regions of the photo exactly as they are: %s", prompt)
}
