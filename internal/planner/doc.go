// Package planner is the validation gate between classification and
// copying. [BuildPlan] resolves every discovered file before anything is
// written and reports the complete, de-duplicated set of descriptions that
// have no extension, so a run either copies everything or touches nothing.
package planner
