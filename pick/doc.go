// Package pick reads and writes key information extraction annotations in
// the PICK folder layout:
//
//	<folder>/boxes_and_transcripts/<name>.tsv
//	<folder>/entities/<name>.txt
//	<folder>/images/<name>.jpg
//
// Each line of a boxes file is
//
//	1,x1,y1,x2,y2,x3,y3,x4,y4,transcript,label
//
// with the four points in clockwise order. The transcript may contain commas;
// the label is always the last field. The entities file is a JSON object
// mapping every label to the transcript of the last shape carrying it.
//
// The package holds no state between calls and does no locking. Callers that
// save many documents at once must partition the work by document name.
package pick
