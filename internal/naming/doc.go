// Package naming converts JSON keys into identifiers for generated code.
//
// Words are split at separators, at lower-to-upper case changes and at the
// end of acronyms, so "userID", "user_id" and "User-Id" share the word list
// [user ID]. The To*Case helpers rebuild identifiers from those words; GoName,
// PythonName and TSProperty additionally guarantee a valid identifier in the
// target language.
package naming
