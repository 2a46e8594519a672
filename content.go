package boon

// evaluateContent checks contentEncoding, contentMediaType and
// contentSchema, in that order. A failed decode reports contentEncoding and
// skips the remaining stages rather than piling on failures for data that
// never decoded. The chain runs only when content assertion was enabled at
// compile time; otherwise these keywords are annotations.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-a-vocabulary-for-the-conten
func evaluateContent(s *Schema, instance any, ctx *validationContext, loc location) (*EvaluationResult, *EvaluationError) {
	dataStr, isString := instance.(string)
	if !isString {
		return nil, nil
	}
	if s.decoder == nil && s.mediaType == nil && s.ContentSchema == nil {
		return nil, nil // annotation only
	}

	content := []byte(dataStr)
	if s.decoder != nil {
		decoded, err := s.decoder(dataStr)
		if err != nil {
			return nil, NewEvaluationError("contentEncoding", "invalid_encoding", "Value is not encoded as {encoding}", map[string]any{
				"encoding": "'" + s.ContentEncoding + "'",
			})
		}
		content = decoded
	}

	var parsed any = content
	if s.mediaType != nil {
		var err error
		parsed, err = s.mediaType(content)
		if err != nil {
			return nil, NewEvaluationError("contentMediaType", "invalid_media_type", "Value is not valid {media_type}", map[string]any{
				"media_type": "'" + s.ContentMediaType + "'",
			})
		}
	}

	if s.ContentSchema != nil {
		result, _, _ := s.ContentSchema.evaluate(parsed, ctx, loc.kw("contentSchema"))
		if !result.IsValid() {
			return result, NewEvaluationError("contentSchema", "content_schema_mismatch", "Decoded content does not match the schema")
		}
		return result, nil
	}
	return nil, nil
}
