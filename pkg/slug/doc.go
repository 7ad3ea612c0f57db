// Package slug builds URL-safe identifiers from generated names.
//
//	slug.Make("Éowyn Dawnblade")                        // "eowyn-dawnblade"
//	slug.Make("Dra'kar the Bold", slug.StripChars("'")) // "drakar-the-bold"
//	slug.Make("Ælfric Þorn", slug.Separator("_"))       // "aelfric_thorn"
//
// Diacritics are folded with golang.org/x/text (NFD, drop combining marks,
// NFC) plus a short table for letters that have no decomposition, such as
// æ, ø and ß. Anything else outside [A-Za-z0-9] separates words.
package slug
