// Package sentiment implements the scoring stage.
//
// A fixed word-to-score lexicon in AFINN format is loaded once, tokens are
// looked up by exact string match, and the reported value is the arithmetic
// mean of the looked-up scores. How words absent from the lexicon enter the
// mean is an explicit policy, not an implementation accident.
package sentiment
